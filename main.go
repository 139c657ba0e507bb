package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/AgriPanel/AP-Backend/internal/auth"
	"github.com/AgriPanel/AP-Backend/internal/banners"
	"github.com/AgriPanel/AP-Backend/internal/config"
	"github.com/AgriPanel/AP-Backend/internal/dashboard"
	"github.com/AgriPanel/AP-Backend/internal/db"
	"github.com/AgriPanel/AP-Backend/internal/farmers"
	"github.com/AgriPanel/AP-Backend/internal/metrics"
	"github.com/AgriPanel/AP-Backend/internal/middleware"
	"github.com/AgriPanel/AP-Backend/internal/news"
	"github.com/AgriPanel/AP-Backend/internal/products"
	"github.com/AgriPanel/AP-Backend/internal/vendors"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "Server is up!")
}

// page serves a placeholder for the admin UI routes so the Edge Guard has
// real paths to gate. The actual UI is deployed separately.
func page(title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, "<!DOCTYPE html><html><head><title>%s · AgriPanel</title></head><body><h1>%s</h1></body></html>", title, title)
	}
}

func main() {
	_ = godotenv.Load(".env.local")
	cfg := config.LoadFromEnv()

	origins, err := cfg.LoadOrigins()
	if err != nil {
		log.Fatal("Failed to load CORS origins: ", err)
	}

	db.Connect()

	auth.Init()
	farmers.Init()
	vendors.Init()
	products.Init()
	news.Init()
	banners.Init()

	m := metrics.New()

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(m.Middleware)
	r.Use(middleware.CORSMiddleware(origins))
	r.Use(middleware.EdgeGuard)

	r.Get("/healthz", HealthHandler)

	r.Get("/", page("Login"))
	r.Get("/login", page("Login"))
	r.Get("/dashboard", page("Dashboard"))
	r.Get("/farmers", page("Farmers"))
	r.Get("/vendors", page("Vendors"))
	r.Get("/organic-products", page("Organic Products"))
	r.Get("/banners", page("Banners"))
	r.Get("/news", page("News"))

	r.Mount("/api/auth", auth.SetupRoutes(m))
	r.Mount("/api/farmers", farmers.SetupRoutes())
	r.Mount("/api/vendors", vendors.SetupRoutes())
	r.Mount("/api/organic-products", products.SetupRoutes())
	r.Mount("/api/news", news.SetupRoutes())
	r.Mount("/api/banners", banners.SetupRoutes())
	r.Mount("/api/dashboard", dashboard.SetupRoutes())

	r.Handle("/metrics", m.Handler())

	fmt.Println("Server listening on port :" + cfg.Port + "...")

	http.ListenAndServe("0.0.0.0:"+cfg.Port, r)
}
