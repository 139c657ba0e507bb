package vendors

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", ListVendors)
	r.Post("/", CreateVendor)
	r.Put("/", UpdateVendor)
	r.Delete("/", DeleteVendor)

	return r
}
