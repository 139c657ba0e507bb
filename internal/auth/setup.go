package auth

import (
	"log"

	"github.com/AgriPanel/AP-Backend/internal/db"
)

func Init() {
	if err := db.DB.AutoMigrate(&Session{}); err != nil {
		log.Fatal("Failed to auto-migrate admin_sessions: ", err)
	}
}
