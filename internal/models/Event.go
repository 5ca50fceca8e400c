package models

import "time"

// Event is a community gathering. Attendees are stored in the event_attendees
// join table; AttendeeCount is only filled by queries that select it.
type Event struct {
	Base
	Title        string     `gorm:"not null" json:"title"`
	Description  string     `gorm:"type:text;not null" json:"description"`
	Location     string     `gorm:"not null" json:"location"`
	StartDate    time.Time  `gorm:"index;not null" json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	Category     string     `gorm:"index;not null" json:"category"`
	MaxAttendees *int       `json:"maxAttendees"`
	ImageURL     string     `json:"imageUrl"`
	IsPublished  bool       `gorm:"index;not null" json:"isPublished"`

	OrganizerID string `gorm:"type:uuid;index;not null" json:"organizerId"`
	Organizer   *User  `gorm:"foreignKey:OrganizerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"organizer,omitempty"`
	Attendees   []User `gorm:"many2many:event_attendees;" json:"-"`

	AttendeeCount int64 `gorm:"->;-:migration" json:"-"`
}
