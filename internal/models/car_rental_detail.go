package models

import (
	"time"

	"gorm.io/gorm"
)

// CarRentalDetail is a booking request submitted from a car rental detail page.
type CarRentalDetail struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Email          string    `gorm:"not null;index" json:"email"`
	Phone          string    `gorm:"not null" json:"phone"`
	CarID          string    `gorm:"not null" json:"carId"`
	CarName        string    `json:"carName"`
	PickupDate     string    `gorm:"not null" json:"pickupDate"`
	ReturnDate     string    `gorm:"not null" json:"returnDate"`
	PickupLocation string    `json:"pickupLocation"`
	ReturnLocation string    `json:"returnLocation"`
	Message        string    `gorm:"type:text" json:"message"`
	Status         Status    `gorm:"default:'pending';index" json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (CarRentalDetail) TableName() string {
	return "car_rental_details"
}

// BeforeCreate defaults the lifecycle status.
func (d *CarRentalDetail) BeforeCreate(tx *gorm.DB) error {
	if d.Status == "" {
		d.Status = StatusPending
	}
	return nil
}
