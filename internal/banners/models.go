package banners

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Banner struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	IsActive    bool   `json:"isActive"`
	CreatedDate string `json:"createdDate"`
	ClickCount  int    `json:"clickCount"`
}

func (Banner) TableName() string { return "banners" }

func (b *Banner) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
