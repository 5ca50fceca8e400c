package models

import "time"

type Announcement struct {
	Base
	Title       string     `gorm:"not null" json:"title"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	Category    string     `gorm:"index;not null" json:"category"`
	Priority    Priority   `gorm:"type:varchar(16);index;not null" json:"priority"`
	IsPublished bool       `gorm:"index;not null" json:"isPublished"`
	ValidUntil  *time.Time `json:"validUntil"`

	AuthorID string `gorm:"type:uuid;index;not null" json:"authorId"`
	Author   *User  `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author,omitempty"`
}
