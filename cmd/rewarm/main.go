package main

import (
	"fmt"
	"log"
	"os"

	"github.com/AgriPanel/AP-Backend/internal/client"
	"github.com/joho/godotenv"
)

// Smoke tool: logs in with the demo admin, walks every list endpoint to warm
// the client cache, and prints what the server is holding.
func main() {
	godotenv.Load(".env.local")

	baseURL := os.Getenv("PANEL_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5050"
	}

	c := client.New(baseURL)

	login, err := c.Login("admin@agripanel.com", "Admin@123")
	if err != nil {
		log.Fatalf("Login failed: %v", err)
	}
	fmt.Printf("✓ Logged in as %s (%s)\n", login.User.Username, login.User.Role)

	c.ClearCache()

	farmers, err := c.Farmers()
	if err != nil {
		log.Fatalf("List farmers: %v", err)
	}
	vendors, err := c.Vendors()
	if err != nil {
		log.Fatalf("List vendors: %v", err)
	}
	products, err := c.Products()
	if err != nil {
		log.Fatalf("List products: %v", err)
	}
	news, err := c.News()
	if err != nil {
		log.Fatalf("List news: %v", err)
	}
	banners, err := c.Banners()
	if err != nil {
		log.Fatalf("List banners: %v", err)
	}

	fmt.Printf("✓ Warmed: %d farmers, %d vendors, %d products, %d news, %d banners\n",
		len(farmers), len(vendors), len(products), len(news), len(banners))

	if err := c.Logout(); err != nil {
		log.Fatalf("Logout failed: %v", err)
	}
	fmt.Println("✓ Logged out")
}
