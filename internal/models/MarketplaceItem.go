package models

// MarketplaceItem is a listing offered by a resident or vendor.
// IsApproved is stored and filtered on; nothing in the portal toggles it.
type MarketplaceItem struct {
	Base
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Price       *float64   `json:"price"`
	Category    string     `gorm:"index;not null" json:"category"`
	Condition   *Condition `gorm:"type:varchar(16)" json:"condition"`
	ContactInfo string     `gorm:"not null" json:"contactInfo"`
	Location    string     `json:"location"`
	ImageURL    string     `json:"imageUrl"`
	IsApproved  bool       `gorm:"not null" json:"isApproved"`
	IsAvailable bool       `gorm:"not null" json:"isAvailable"`

	SellerID string `gorm:"type:uuid;index;not null" json:"sellerId"`
	Seller   *User  `gorm:"foreignKey:SellerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"seller,omitempty"`
}
