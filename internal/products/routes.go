package products

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", ListProducts)
	r.Post("/", CreateProduct)
	r.Put("/", UpdateProduct)
	r.Delete("/", DeleteProduct)

	return r
}
