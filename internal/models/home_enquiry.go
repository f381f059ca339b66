package models

import (
	"time"

	"gorm.io/gorm"
)

// FormType discriminates the three home page enquiry variants.
type FormType string

const (
	FormTypeCars         FormType = "cars"
	FormTypeTourPackages FormType = "tourPackages"
	FormTypeHotels       FormType = "hotels"
)

// Valid reports whether t names a known variant.
func (t FormType) Valid() bool {
	switch t {
	case FormTypeCars, FormTypeTourPackages, FormTypeHotels:
		return true
	}
	return false
}

// HomeEnquiry is the polymorphic enquiry submitted from the home page forms.
// Variant-specific fields live in nullable columns of a single table, the
// same overlay shape the admin panel was built against.
type HomeEnquiry struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	FormType FormType `gorm:"not null;index" json:"formType"`
	Name     string   `gorm:"not null" json:"name"`
	Email    string   `gorm:"not null;index" json:"email"`
	Phone    string   `gorm:"not null" json:"phone"`

	// cars
	FromLocation string `json:"fromLocation,omitempty"`
	ToLocation   string `json:"toLocation,omitempty"`
	PickupDate   string `json:"pickupDate,omitempty"`
	CarType      string `json:"carType,omitempty"`

	// tourPackages
	PackageType string `json:"packageType,omitempty"`
	TravelDate  string `json:"travelDate,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Travelers   string `json:"travelers,omitempty"`

	// hotels
	Destination string `json:"destination,omitempty"`
	CheckIn     string `json:"checkIn,omitempty"`
	CheckOut    string `json:"checkOut,omitempty"`
	Rooms       string `json:"rooms,omitempty"`

	Status    Status    `gorm:"default:'pending';index" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (HomeEnquiry) TableName() string {
	return "home_enquiries"
}

func (e *HomeEnquiry) BeforeCreate(tx *gorm.DB) error {
	if e.Status == "" {
		e.Status = StatusPending
	}
	return nil
}
