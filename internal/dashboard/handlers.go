package dashboard

import (
	"net/http"

	"github.com/AgriPanel/AP-Backend/internal/banners"
	"github.com/AgriPanel/AP-Backend/internal/db"
	"github.com/AgriPanel/AP-Backend/internal/farmers"
	"github.com/AgriPanel/AP-Backend/internal/httputil"
	"github.com/AgriPanel/AP-Backend/internal/news"
	"github.com/AgriPanel/AP-Backend/internal/products"
	"github.com/AgriPanel/AP-Backend/internal/vendors"
)

type summary struct {
	Farmers  int64 `json:"farmers"`
	Vendors  int64 `json:"vendors"`
	Products int64 `json:"products"`
	News     int64 `json:"news"`
	Banners  int64 `json:"banners"`
}

// SummaryHandler returns row counts for the dashboard landing page, replacing
// the old pattern of the UI fetching all five lists just to show totals.
func SummaryHandler(w http.ResponseWriter, r *http.Request) {
	var s summary

	counts := []struct {
		model any
		dest  *int64
	}{
		{&farmers.Farmer{}, &s.Farmers},
		{&vendors.Vendor{}, &s.Vendors},
		{&products.OrganicProduct{}, &s.Products},
		{&news.Article{}, &s.News},
		{&banners.Banner{}, &s.Banners},
	}

	for _, c := range counts {
		if err := db.DB.Model(c.model).Count(c.dest).Error; err != nil {
			httputil.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	httputil.JSON(w, http.StatusOK, s)
}
