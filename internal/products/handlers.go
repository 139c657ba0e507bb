package products

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/AgriPanel/AP-Backend/internal/db"
	"github.com/AgriPanel/AP-Backend/internal/httputil"
)

func ListProducts(w http.ResponseWriter, r *http.Request) {
	rows := []OrganicProduct{}
	if err := db.DB.Find(&rows).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httputil.JSON(w, http.StatusOK, rows)
}

func CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product OrganicProduct
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		httputil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := db.DB.Create(&product).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httputil.JSON(w, http.StatusCreated, product)
}

func UpdateProduct(w http.ResponseWriter, r *http.Request) {
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

	var product OrganicProduct
	if err := db.DB.First(&product, "id = ?", ref.ID).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := json.Unmarshal(body, &product); err != nil {
		httputil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	product.ID = ref.ID

	if err := db.DB.Save(&product).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httputil.JSON(w, http.StatusOK, product)
}

func DeleteProduct(w http.ResponseWriter, r *http.Request) {
	var ref struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&ref); err != nil {
		httputil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var product OrganicProduct
	if err := db.DB.First(&product, "id = ?", ref.ID).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := db.DB.Delete(&product).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httputil.JSON(w, http.StatusOK, product)
}
