package farmers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/AgriPanel/AP-Backend/internal/db"
	"github.com/AgriPanel/AP-Backend/internal/httputil"
)

// ListFarmers returns every farmer row.
func ListFarmers(w http.ResponseWriter, r *http.Request) {
	rows := []Farmer{}
	if err := db.DB.Find(&rows).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httputil.JSON(w, http.StatusOK, rows)
}

// CreateFarmer inserts a new farmer. joinDate defaults to today (YYYY-MM-DD)
// when the form leaves it out.
func CreateFarmer(w http.ResponseWriter, r *http.Request) {
	var farmer Farmer
	if err := json.NewDecoder(r.Body).Decode(&farmer); err != nil {
		httputil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if farmer.JoinDate == "" {
		farmer.JoinDate = time.Now().Format("2006-01-02")
	}

	if err := db.DB.Create(&farmer).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httputil.JSON(w, http.StatusCreated, farmer)
}

// UpdateFarmer overlays the submitted fields onto the row named by id in the
// body and writes it back, echoing the updated row. A missing row surfaces as
// a plain 500 like any other database error.
func UpdateFarmer(w http.ResponseWriter, r *http.Request) {
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

	var farmer Farmer
	if err := db.DB.First(&farmer, "id = ?", ref.ID).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := json.Unmarshal(body, &farmer); err != nil {
		httputil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	farmer.ID = ref.ID

	if err := db.DB.Save(&farmer).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httputil.JSON(w, http.StatusOK, farmer)
}

// DeleteFarmer removes the row named by id and echoes the deleted row.
func DeleteFarmer(w http.ResponseWriter, r *http.Request) {
	var ref struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&ref); err != nil {
		httputil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var farmer Farmer
	if err := db.DB.First(&farmer, "id = ?", ref.ID).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := db.DB.Delete(&farmer).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httputil.JSON(w, http.StatusOK, farmer)
}
