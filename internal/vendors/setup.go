package vendors

import (
	"log"

	"github.com/AgriPanel/AP-Backend/internal/db"
)

func Init() {
	if err := db.DB.AutoMigrate(&Vendor{}); err != nil {
		log.Fatal("Failed to auto-migrate vendors: ", err)
	}
}
