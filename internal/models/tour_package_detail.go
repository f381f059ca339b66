package models

import (
	"time"

	"gorm.io/gorm"
)

// TourPackageDetail is a booking enquiry submitted from a tour package detail page.
type TourPackageDetail struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"not null;index" json:"email"`
	Phone        string    `gorm:"not null" json:"phone"`
	PackageID    string    `gorm:"not null" json:"packageId"`
	PackageName  string    `json:"packageName"`
	SelectedDate string    `json:"selectedDate"`
	Adults       int       `gorm:"default:1" json:"adults"`
	Children     int       `gorm:"default:0" json:"children"`
	Message      string    `gorm:"type:text" json:"message"`
	Status       Status    `gorm:"default:'pending';index" json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (TourPackageDetail) TableName() string {
	return "tour_package_details"
}

func (d *TourPackageDetail) BeforeCreate(tx *gorm.DB) error {
	if d.Status == "" {
		d.Status = StatusPending
	}
	return nil
}
