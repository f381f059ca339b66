package models

import (
	"time"

	"gorm.io/gorm"
)

// HotelEnquiry is a booking enquiry against a hotel listing.
type HotelEnquiry struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	HotelID      uint      `gorm:"not null;index" json:"hotelId"`
	HotelName    string    `gorm:"not null" json:"hotelName"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"not null;index" json:"email"`
	Phone        string    `gorm:"not null" json:"phone"`
	CheckInDate  string    `gorm:"not null" json:"checkInDate"`
	CheckOutDate string    `gorm:"not null" json:"checkOutDate"`
	Guests       int       `gorm:"default:1" json:"guests"`
	Rooms        int       `gorm:"default:1" json:"rooms"`
	Message      string    `gorm:"type:text" json:"message"`
	Status       Status    `gorm:"default:'pending';index" json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (HotelEnquiry) TableName() string {
	return "hotel_enquiries"
}

func (e *HotelEnquiry) BeforeCreate(tx *gorm.DB) error {
	if e.Status == "" {
		e.Status = StatusPending
	}
	return nil
}
