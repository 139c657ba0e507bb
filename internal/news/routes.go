package news

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", ListNews)
	r.Post("/", CreateNews)
	r.Put("/", UpdateNews)
	r.Delete("/", DeleteNews)

	return r
}
