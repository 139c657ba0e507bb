package banners

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/AgriPanel/AP-Backend/internal/db"
	"github.com/AgriPanel/AP-Backend/internal/httputil"
)

func ListBanners(w http.ResponseWriter, r *http.Request) {
	rows := []Banner{}
	if err := db.DB.Find(&rows).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httputil.JSON(w, http.StatusOK, rows)
}

// CreateBanner inserts a banner. createdDate defaults to today when absent.
func CreateBanner(w http.ResponseWriter, r *http.Request) {
	var banner Banner
	if err := json.NewDecoder(r.Body).Decode(&banner); err != nil {
		httputil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if banner.CreatedDate == "" {
		banner.CreatedDate = time.Now().Format("2006-01-02")
	}

	if err := db.DB.Create(&banner).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httputil.JSON(w, http.StatusCreated, banner)
}

func UpdateBanner(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		httputil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var ref struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &ref); err != nil {
		httputil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var banner Banner
	if err := db.DB.First(&banner, "id = ?", ref.ID).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := json.Unmarshal(body, &banner); err != nil {
		httputil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	banner.ID = ref.ID

	if err := db.DB.Save(&banner).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httputil.JSON(w, http.StatusOK, banner)
}

func DeleteBanner(w http.ResponseWriter, r *http.Request) {
	var ref struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&ref); err != nil {
		httputil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var banner Banner
	if err := db.DB.First(&banner, "id = ?", ref.ID).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := db.DB.Delete(&banner).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httputil.JSON(w, http.StatusOK, banner)
}
