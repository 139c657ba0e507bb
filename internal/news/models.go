package news

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Article struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	Featured    bool   `json:"featured"`
	Source      string `json:"source"`
	SourceURL   string `json:"sourceUrl"`
	PublishedAt string `json:"published_at"`
}

func (Article) TableName() string { return "news" }

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
