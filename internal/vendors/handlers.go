package vendors

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/AgriPanel/AP-Backend/internal/db"
	"github.com/AgriPanel/AP-Backend/internal/httputil"
)

func ListVendors(w http.ResponseWriter, r *http.Request) {
	rows := []Vendor{}
	if err := db.DB.Find(&rows).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httputil.JSON(w, http.StatusOK, rows)
}

func CreateVendor(w http.ResponseWriter, r *http.Request) {
	var vendor Vendor
	if err := json.NewDecoder(r.Body).Decode(&vendor); err != nil {
		httputil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := db.DB.Create(&vendor).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httputil.JSON(w, http.StatusCreated, vendor)
}

func UpdateVendor(w http.ResponseWriter, r *http.Request) {
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

	var vendor Vendor
	if err := db.DB.First(&vendor, "id = ?", ref.ID).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := json.Unmarshal(body, &vendor); err != nil {
		httputil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	vendor.ID = ref.ID

	if err := db.DB.Save(&vendor).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httputil.JSON(w, http.StatusOK, vendor)
}

func DeleteVendor(w http.ResponseWriter, r *http.Request) {
	var ref struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&ref); err != nil {
		httputil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var vendor Vendor
	if err := db.DB.First(&vendor, "id = ?", ref.ID).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := db.DB.Delete(&vendor).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httputil.JSON(w, http.StatusOK, vendor)
}
