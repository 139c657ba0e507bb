package banners_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/AgriPanel/AP-Backend/internal/banners"
	"github.com/AgriPanel/AP-Backend/internal/db"
	"github.com/go-chi/chi/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testServer *httptest.Server

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "banners-test-*")
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
	banners.Init()

	r := chi.NewRouter()
	r.Mount("/api/banners", banners.SetupRoutes())

	testServer = httptest.NewServer(r)
	defer testServer.Close()

	os.Exit(m.Run())
}

func doJSON(t *testing.T, method, path string, body any, out any) int {
	t.Helper()
	payload, _ := json.Marshal(body)
	req, err := http.NewRequest(method, testServer.URL+path, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s %s response: %v", method, path, err)
		}
	}
	return resp.StatusCode
}

// TestCreateBannerDefaultsCreatedDate verifies a banner without a createdDate
// gets today's date.
func TestCreateBannerDefaultsCreatedDate(t *testing.T) {
	var created banners.Banner
	code := doJSON(t, http.MethodPost, "/api/banners",
		banners.Banner{Title: "Harvest Sale", IsActive: true}, &created)
	if code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", code)
	}
	if created.ID == "" {
		t.Error("expected server-assigned id")
	}
	if created.CreatedDate != time.Now().Format("2006-01-02") {
		t.Errorf("expected createdDate defaulted to today, got %q", created.CreatedDate)
	}
}

// TestToggleActive verifies a partial update flips isActive and leaves the
// rest of the row alone.
func TestToggleActive(t *testing.T) {
	var created banners.Banner
	doJSON(t, http.MethodPost, "/api/banners",
		banners.Banner{Title: "Monsoon Offer", Description: "20% off seeds", IsActive: true}, &created)

	var updated banners.Banner
	code := doJSON(t, http.MethodPut, "/api/banners",
		map[string]any{"id": created.ID, "isActive": false}, &updated)
	if code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", code)
	}
	if updated.IsActive {
		t.Error("expected isActive flipped to false")
	}
	if updated.Description != "20% off seeds" {
		t.Errorf("expected untouched fields preserved, got %q", updated.Description)
	}
}

func TestDeleteBanner(t *testing.T) {
	var created banners.Banner
	doJSON(t, http.MethodPost, "/api/banners", banners.Banner{Title: "Old Promo"}, &created)

	var deleted banners.Banner
	code := doJSON(t, http.MethodDelete, "/api/banners",
		map[string]string{"id": created.ID}, &deleted)
	if code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", code)
	}
	if deleted.Title != "Old Promo" {
		t.Errorf("expected deleted row echoed back, got %+v", deleted)
	}

	var list []banners.Banner
	doJSON(t, http.MethodGet, "/api/banners", nil, &list)
	for _, b := range list {
		if b.ID == created.ID {
			t.Error("deleted banner still present in list")
		}
	}
}
