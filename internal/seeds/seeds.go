package seeds

import (
	_ "embed"
	"fmt"
	"log"

	"github.com/AgriPanel/AP-Backend/internal/banners"
	"github.com/AgriPanel/AP-Backend/internal/db"
	"github.com/AgriPanel/AP-Backend/internal/farmers"
	"github.com/AgriPanel/AP-Backend/internal/news"
	"github.com/AgriPanel/AP-Backend/internal/products"
	"github.com/AgriPanel/AP-Backend/internal/vendors"
	"github.com/goccy/go-yaml"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

// Fixture shapes mirror the models but carry yaml tags so the fixtures file
// can stay readable.
type farmerFixture struct {
	Name       string   `yaml:"name"`
	Email      string   `yaml:"email"`
	Phone      string   `yaml:"phone"`
	Location   string   `yaml:"location"`
	Crops      []string `yaml:"crops"`
	Experience string   `yaml:"experience"`
	Status     string   `yaml:"status"`
	JoinDate   string   `yaml:"join_date"`
}

type vendorFixture struct {
	Name          string  `yaml:"name"`
	Address       string  `yaml:"address"`
	Location      string  `yaml:"location"`
	Category      string  `yaml:"category"`
	Rating        float64 `yaml:"rating"`
	TotalPurchase float64 `yaml:"total_purchase"`
	JoinDate      string  `yaml:"join_date"`
}

type productFixture struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Category    string  `yaml:"category"`
	Price       float64 `yaml:"price"`
	Unit        string  `yaml:"unit"`
	Quantity    int     `yaml:"quantity"`
	HarvestDate string  `yaml:"harvest_date"`
	ExpiryDate  string  `yaml:"expiry_date"`
	Status      string  `yaml:"status"`
}

type newsFixture struct {
	Title       string `yaml:"title"`
	Content     string `yaml:"content"`
	Category    string `yaml:"category"`
	Status      string `yaml:"status"`
	Featured    bool   `yaml:"featured"`
	PublishedAt string `yaml:"published_at"`
}

type bannerFixture struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	ImageURL    string `yaml:"image_url"`
	IsActive    bool   `yaml:"is_active"`
	CreatedDate string `yaml:"created_date"`
}

type fixtures struct {
	Farmers  []farmerFixture  `yaml:"farmers"`
	Vendors  []vendorFixture  `yaml:"vendors"`
	Products []productFixture `yaml:"products"`
	News     []newsFixture    `yaml:"news"`
	Banners  []bannerFixture  `yaml:"banners"`
}

// SeedAll loads the embedded fixtures and inserts any row that isn't already
// present, keyed by the natural name/title fields so reruns are harmless.
func SeedAll() error {
	var fx fixtures
	if err := yaml.Unmarshal(fixturesYAML, &fx); err != nil {
		return fmt.Errorf("parse fixtures: %w", err)
	}

	if err := seedFarmers(fx.Farmers); err != nil {
		return err
	}
	if err := seedVendors(fx.Vendors); err != nil {
		return err
	}
	if err := seedProducts(fx.Products); err != nil {
		return err
	}
	if err := seedNews(fx.News); err != nil {
		return err
	}
	if err := seedBanners(fx.Banners); err != nil {
		return err
	}

	log.Printf("[seed] done: %d farmers, %d vendors, %d products, %d news, %d banners",
		len(fx.Farmers), len(fx.Vendors), len(fx.Products), len(fx.News), len(fx.Banners))
	return nil
}

func seedFarmers(rows []farmerFixture) error {
	for _, fx := range rows {
		row := farmers.Farmer{
			Name:       fx.Name,
			Email:      fx.Email,
			Phone:      fx.Phone,
			Location:   fx.Location,
			Crops:      fx.Crops,
			Experience: fx.Experience,
			Status:     fx.Status,
			JoinDate:   fx.JoinDate,
		}
		if err := db.DB.Where("email = ?", fx.Email).FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("seed farmer %s: %w", fx.Name, err)
		}
	}
	return nil
}

func seedVendors(rows []vendorFixture) error {
	for _, fx := range rows {
		row := vendors.Vendor{
			Name:          fx.Name,
			Address:       fx.Address,
			Location:      fx.Location,
			Category:      fx.Category,
			Rating:        fx.Rating,
			TotalPurchase: fx.TotalPurchase,
			JoinDate:      fx.JoinDate,
		}
		if err := db.DB.Where("name = ?", fx.Name).FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("seed vendor %s: %w", fx.Name, err)
		}
	}
	return nil
}

func seedProducts(rows []productFixture) error {
	for _, fx := range rows {
		row := products.OrganicProduct{
			Name:        fx.Name,
			Description: fx.Description,
			Category:    fx.Category,
			Price:       fx.Price,
			Unit:        fx.Unit,
			Quantity:    fx.Quantity,
			HarvestDate: fx.HarvestDate,
			ExpiryDate:  fx.ExpiryDate,
			Status:      fx.Status,
		}
		if err := db.DB.Where("name = ?", fx.Name).FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("seed product %s: %w", fx.Name, err)
		}
	}
	return nil
}

func seedNews(rows []newsFixture) error {
	for _, fx := range rows {
		row := news.Article{
			Title:       fx.Title,
			Content:     fx.Content,
			Category:    fx.Category,
			Status:      fx.Status,
			Featured:    fx.Featured,
			PublishedAt: fx.PublishedAt,
		}
		if err := db.DB.Where("title = ?", fx.Title).FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("seed news %s: %w", fx.Title, err)
		}
	}
	return nil
}

func seedBanners(rows []bannerFixture) error {
	for _, fx := range rows {
		row := banners.Banner{
			Title:       fx.Title,
			Description: fx.Description,
			ImageURL:    fx.ImageURL,
			IsActive:    fx.IsActive,
			CreatedDate: fx.CreatedDate,
		}
		if err := db.DB.Where("title = ?", fx.Title).FirstOrCreate(&row).Error; err != nil {
			return fmt.Errorf("seed banner %s: %w", fx.Title, err)
		}
	}
	return nil
}
