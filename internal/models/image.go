package models

import "time"

// Image records an uploaded file so it can be served by id.
type Image struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Filename     string    `gorm:"not null" json:"filename"`
	OriginalName string    `gorm:"not null" json:"originalname"`
	MimeType     string    `gorm:"not null" json:"mimetype"`
	Size         int64     `json:"size"`
	Path         string    `gorm:"not null" json:"path"`
	URL          string    `gorm:"not null" json:"url"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Image) TableName() string {
	return "images"
}
