package models

import (
	"time"

	"gorm.io/gorm"
)

// ContactForm is a message submitted from the contact page.
type ContactForm struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null;index" json:"email"`
	Phone     string    `gorm:"not null" json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    Status    `gorm:"default:'pending';index" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ContactForm) TableName() string {
	return "contact_forms"
}

func (f *ContactForm) BeforeCreate(tx *gorm.DB) error {
	if f.Status == "" {
		f.Status = StatusPending
	}
	return nil
}
