package models

// User is any resident, vendor or administrator. Every piece of content
// points back at exactly one user.
type User struct {
	Base
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Phone    string `json:"phone"`
	Role     Role   `gorm:"type:varchar(16);not null" json:"role"`
	Verified bool   `gorm:"not null" json:"verified"`
}
