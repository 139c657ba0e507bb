package main

import (
	"log"

	"github.com/AgriPanel/AP-Backend/internal/auth"
	"github.com/AgriPanel/AP-Backend/internal/banners"
	"github.com/AgriPanel/AP-Backend/internal/db"
	"github.com/AgriPanel/AP-Backend/internal/farmers"
	"github.com/AgriPanel/AP-Backend/internal/news"
	"github.com/AgriPanel/AP-Backend/internal/products"
	"github.com/AgriPanel/AP-Backend/internal/seeds"
	"github.com/AgriPanel/AP-Backend/internal/vendors"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")
	db.Connect()

	auth.Init()
	farmers.Init()
	vendors.Init()
	products.Init()
	news.Init()
	banners.Init()

	if err := seeds.SeedAll(); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
}
