package farmers

import (
	"log"

	"github.com/AgriPanel/AP-Backend/internal/db"
)

func Init() {
	if err := db.DB.AutoMigrate(&Farmer{}); err != nil {
		log.Fatal("Failed to auto-migrate farmers: ", err)
	}
}
