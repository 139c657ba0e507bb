package dashboard_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/AgriPanel/AP-Backend/internal/banners"
	"github.com/AgriPanel/AP-Backend/internal/dashboard"
	"github.com/AgriPanel/AP-Backend/internal/db"
	"github.com/AgriPanel/AP-Backend/internal/farmers"
	"github.com/AgriPanel/AP-Backend/internal/news"
	"github.com/AgriPanel/AP-Backend/internal/products"
	"github.com/AgriPanel/AP-Backend/internal/vendors"
	"github.com/go-chi/chi/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testServer *httptest.Server

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "dashboard-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(dir, "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(err)
	}
	db.DB = gdb

	if err := db.DB.AutoMigrate(
		&vendors.Vendor{},
		&products.OrganicProduct{},
		&news.Article{},
		&banners.Banner{},
	); err != nil {
		panic(err)
	}
	// farmers carries a Postgres text[] column, so sqlite gets the table by hand.
	if err := db.DB.Exec(`CREATE TABLE farmers (
		id TEXT PRIMARY KEY,
		name TEXT, email TEXT, phone TEXT, location TEXT,
		crops TEXT, experience TEXT, status TEXT, join_date TEXT
	)`).Error; err != nil {
		panic(err)
	}

	r := chi.NewRouter()
	r.Mount("/api/dashboard", dashboard.SetupRoutes())

	testServer = httptest.NewServer(r)
	defer testServer.Close()

	os.Exit(m.Run())
}

// TestSummaryCounts verifies the summary reflects the rows in each table.
func TestSummaryCounts(t *testing.T) {
	seed := []any{
		&farmers.Farmer{ID: "f1", Name: "Rajesh Kumar"},
		&farmers.Farmer{ID: "f2", Name: "Priya Sharma"},
		&vendors.Vendor{ID: "v1", Name: "Green Grocers"},
		&products.OrganicProduct{ID: "p1", Name: "Organic Tomatoes"},
		&products.OrganicProduct{ID: "p2", Name: "Organic Wheat"},
		&products.OrganicProduct{ID: "p3", Name: "Raw Honey"},
		&news.Article{ID: "n1", Title: "Monsoon outlook"},
		&banners.Banner{ID: "b1", Title: "Harvest Sale"},
	}
	for _, row := range seed {
		if err := db.DB.Create(row).Error; err != nil {
			t.Fatalf("seed %T: %v", row, err)
		}
	}

	resp, err := http.Get(testServer.URL + "/api/dashboard/summary")
	if err != nil {
		t.Fatalf("GET summary: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var got map[string]int64
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode summary: %v", err)
	}

	want := map[string]int64{"farmers": 2, "vendors": 1, "products": 3, "news": 1, "banners": 1}
	for key, count := range want {
		if got[key] != count {
			t.Errorf("%s: expected %d, got %d", key, count, got[key])
		}
	}
}
