package news

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/AgriPanel/AP-Backend/internal/db"
	"github.com/AgriPanel/AP-Backend/internal/httputil"
)

func ListNews(w http.ResponseWriter, r *http.Request) {
	rows := []Article{}
	if err := db.DB.Find(&rows).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httputil.JSON(w, http.StatusOK, rows)
}

// CreateNews inserts an article. published_at defaults to today when absent.
func CreateNews(w http.ResponseWriter, r *http.Request) {
	var article Article
	if err := json.NewDecoder(r.Body).Decode(&article); err != nil {
		httputil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if article.PublishedAt == "" {
		article.PublishedAt = time.Now().Format("2006-01-02")
	}

	if err := db.DB.Create(&article).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httputil.JSON(w, http.StatusCreated, article)
}

func UpdateNews(w http.ResponseWriter, r *http.Request) {
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

	var article Article
	if err := db.DB.First(&article, "id = ?", ref.ID).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := json.Unmarshal(body, &article); err != nil {
		httputil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	article.ID = ref.ID

	if err := db.DB.Save(&article).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httputil.JSON(w, http.StatusOK, article)
}

func DeleteNews(w http.ResponseWriter, r *http.Request) {
	var ref struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&ref); err != nil {
		httputil.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var article Article
	if err := db.DB.First(&article, "id = ?", ref.ID).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := db.DB.Delete(&article).Error; err != nil {
		httputil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httputil.JSON(w, http.StatusOK, article)
}
