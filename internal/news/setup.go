package news

import (
	"log"

	"github.com/AgriPanel/AP-Backend/internal/db"
)

func Init() {
	if err := db.DB.AutoMigrate(&Article{}); err != nil {
		log.Fatal("Failed to auto-migrate news: ", err)
	}
}
