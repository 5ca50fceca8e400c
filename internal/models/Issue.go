package models

// Issue is a problem reported by a resident. Geometry optionally holds the
// reported point as WKB; the API exchanges it as GeoJSON.
type Issue struct {
	Base
	Title       string      `gorm:"not null" json:"title"`
	Description string      `gorm:"type:text;not null" json:"description"`
	Location    string      `gorm:"not null" json:"location"`
	Category    string      `gorm:"index;not null" json:"category"`
	Status      IssueStatus `gorm:"type:varchar(16);index;not null" json:"status"`
	Priority    Priority    `gorm:"type:varchar(16);not null" json:"priority"`
	Upvotes     int         `gorm:"not null" json:"upvotes"`
	Geometry    []byte      `gorm:"type:bytea" json:"-"`

	ReporterID string `gorm:"type:uuid;index;not null" json:"reporterId"`
	Reporter   *User  `gorm:"foreignKey:ReporterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"reporter,omitempty"`
}
