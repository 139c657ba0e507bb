package farmers

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Farmer is one registered producer. All fields besides the id are free-form
// strings from the admin forms; nothing here is validated beyond the column
// types.
type Farmer struct {
	ID         string         `gorm:"primaryKey" json:"id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone"`
	Location   string         `json:"location"`
	Crops      pq.StringArray `gorm:"type:text[]" json:"crops"`
	Experience string         `json:"experience"`
	Status     string         `json:"status"`
	JoinDate   string         `json:"joinDate"`
}

func (Farmer) TableName() string { return "farmers" }

func (f *Farmer) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
