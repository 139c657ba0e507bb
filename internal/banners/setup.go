package banners

import (
	"log"

	"github.com/AgriPanel/AP-Backend/internal/db"
)

func Init() {
	if err := db.DB.AutoMigrate(&Banner{}); err != nil {
		log.Fatal("Failed to auto-migrate banners: ", err)
	}
}
