package products

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganicProduct is one marketplace listing. FarmerID references a farmers
// row by id but is never verified here; the admin forms are trusted.
type OrganicProduct struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit"`
	Quantity    int     `json:"quantity"`
	HarvestDate string  `json:"harvest_date"`
	ExpiryDate  string  `json:"expiry_date"`
	Status      string  `json:"status"`
	ImageURL    string  `json:"image_url"`
	FarmerID    string  `json:"farmer_id"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
}

func (OrganicProduct) TableName() string { return "organic_products" }

func (p *OrganicProduct) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
