package products

import (
	"log"

	"github.com/AgriPanel/AP-Backend/internal/db"
)

func Init() {
	if err := db.DB.AutoMigrate(&OrganicProduct{}); err != nil {
		log.Fatal("Failed to auto-migrate organic_products: ", err)
	}
}
