package banners

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", ListBanners)
	r.Post("/", CreateBanner)
	r.Put("/", UpdateBanner)
	r.Delete("/", DeleteBanner)

	return r
}
