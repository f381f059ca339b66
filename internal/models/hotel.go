package models

import "time"

// Hotel is a provider-submitted hotel listing.
type Hotel struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	Name          string      `gorm:"not null" json:"name"`
	Location      string      `gorm:"not null" json:"location"`
	Price         float64     `gorm:"not null" json:"price"`
	Rating        float64     `gorm:"default:0" json:"rating"`
	Type          string      `gorm:"not null" json:"type"`
	Description   string      `gorm:"type:text" json:"description"`
	Images        JSONStrings `gorm:"type:text" json:"images"`
	Amenities     JSONStrings `gorm:"type:text" json:"amenities"`
	ProviderName  string      `gorm:"not null" json:"providerName"`
	ProviderEmail string      `gorm:"not null" json:"providerEmail"`
	ProviderPhone string      `gorm:"not null" json:"providerPhone"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

func (Hotel) TableName() string {
	return "hotels"
}
