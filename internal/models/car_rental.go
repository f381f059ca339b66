package models

import "time"

// CarRental is a provider-submitted car listing.
type CarRental struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	Title          string      `gorm:"not null" json:"title"`
	CarType        string      `gorm:"not null" json:"carType"`
	Price          float64     `gorm:"not null" json:"price"`
	PriceUnit      string      `gorm:"default:'per day'" json:"priceUnit"`
	Seating        string      `gorm:"not null" json:"seating"`
	// AC is a pointer so an explicit false survives the column default.
	AC             *bool       `gorm:"default:true" json:"ac"`
	Transmission   string      `gorm:"not null" json:"transmission"`
	Fuel           string      `gorm:"not null" json:"fuel"`
	Description    string      `gorm:"type:text" json:"description"`
	Features       JSONStrings `gorm:"type:text" json:"features"`
	Specifications JSONMap     `gorm:"type:text" json:"specifications"`
	Images         JSONStrings `gorm:"type:text" json:"images"`
	ProviderName   string      `gorm:"not null" json:"providerName"`
	ProviderEmail  string      `gorm:"not null" json:"providerEmail"`
	ProviderPhone  string      `gorm:"not null" json:"providerPhone"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

func (CarRental) TableName() string {
	return "car_rentals"
}
