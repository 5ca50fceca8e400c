package models

// EmergencyContact is curated reference data with no owner.
type EmergencyContact struct {
	Base
	Name        string            `gorm:"not null" json:"name"`
	Service     string            `gorm:"not null" json:"service"`
	PhoneNumber string            `gorm:"not null" json:"phoneNumber"`
	Address     string            `json:"address"`
	Category    EmergencyCategory `gorm:"type:varchar(16);index;not null" json:"category"`
	IsVerified  bool              `gorm:"not null" json:"isVerified"`
	IsActive    bool              `gorm:"index;not null" json:"isActive"`
}
