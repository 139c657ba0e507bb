package farmers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", ListFarmers)
	r.Post("/", CreateFarmer)
	r.Put("/", UpdateFarmer)
	r.Delete("/", DeleteFarmer)

	return r
}
