package vendors

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Vendor struct {
	ID            string  `gorm:"primaryKey" json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Location      string  `json:"location"`
	Category      string  `json:"category"`
	Rating        float64 `json:"rating"`
	TotalPurchase float64 `json:"total_purchase"`
	JoinDate      string  `json:"joinDate"`
	Avatar        string  `json:"avatar"`
}

func (Vendor) TableName() string { return "vendors" }

func (v *Vendor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
