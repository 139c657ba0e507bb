package client

import (
	"net/http"
	"time"

	"github.com/AgriPanel/AP-Backend/internal/banners"
	"github.com/AgriPanel/AP-Backend/internal/farmers"
	"github.com/AgriPanel/AP-Backend/internal/news"
	"github.com/AgriPanel/AP-Backend/internal/products"
	"github.com/AgriPanel/AP-Backend/internal/vendors"
)

type UserInfo struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type LoginResult struct {
	Success      bool      `json:"success"`
	Message      string    `json:"message"`
	User         UserInfo  `json:"user"`
	SessionToken string    `json:"sessionToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

type ValidateResult struct {
	Success   bool      `json:"success"`
	Valid     bool      `json:"valid"`
	User      UserInfo  `json:"user"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Login authenticates and captures the session token for Logout/Validate.
func (c *Client) Login(email, password string) (LoginResult, error) {
	var out LoginResult
	err := c.send(http.MethodPost, "/api/auth/login",
		map[string]string{"email": email, "password": password}, &out)
	if err == nil {
		c.token = out.SessionToken
	}
	return out, err
}

func (c *Client) Logout() error {
	err := c.send(http.MethodPost, "/api/auth/logout",
		map[string]string{"sessionToken": c.token}, nil)
	if err == nil {
		c.token = ""
	}
	return err
}

func (c *Client) Validate() (ValidateResult, error) {
	var out ValidateResult
	err := c.send(http.MethodPost, "/api/auth/validate",
		map[string]string{"sessionToken": c.token}, &out)
	return out, err
}

func (c *Client) Farmers() ([]farmers.Farmer, error) {
	var out []farmers.Farmer
	err := c.get("/api/farmers", &out)
	return out, err
}

func (c *Client) CreateFarmer(in farmers.Farmer) (farmers.Farmer, error) {
	var out farmers.Farmer
	err := c.send(http.MethodPost, "/api/farmers", in, &out)
	return out, err
}

func (c *Client) UpdateFarmer(in farmers.Farmer) (farmers.Farmer, error) {
	var out farmers.Farmer
	err := c.send(http.MethodPut, "/api/farmers", in, &out)
	return out, err
}

func (c *Client) DeleteFarmer(id string) (farmers.Farmer, error) {
	var out farmers.Farmer
	err := c.send(http.MethodDelete, "/api/farmers", map[string]string{"id": id}, &out)
	return out, err
}

func (c *Client) Vendors() ([]vendors.Vendor, error) {
	var out []vendors.Vendor
	err := c.get("/api/vendors", &out)
	return out, err
}

func (c *Client) CreateVendor(in vendors.Vendor) (vendors.Vendor, error) {
	var out vendors.Vendor
	err := c.send(http.MethodPost, "/api/vendors", in, &out)
	return out, err
}

func (c *Client) UpdateVendor(in vendors.Vendor) (vendors.Vendor, error) {
	var out vendors.Vendor
	err := c.send(http.MethodPut, "/api/vendors", in, &out)
	return out, err
}

func (c *Client) DeleteVendor(id string) (vendors.Vendor, error) {
	var out vendors.Vendor
	err := c.send(http.MethodDelete, "/api/vendors", map[string]string{"id": id}, &out)
	return out, err
}

func (c *Client) Products() ([]products.OrganicProduct, error) {
	var out []products.OrganicProduct
	err := c.get("/api/organic-products", &out)
	return out, err
}

func (c *Client) CreateProduct(in products.OrganicProduct) (products.OrganicProduct, error) {
	var out products.OrganicProduct
	err := c.send(http.MethodPost, "/api/organic-products", in, &out)
	return out, err
}

func (c *Client) UpdateProduct(in products.OrganicProduct) (products.OrganicProduct, error) {
	var out products.OrganicProduct
	err := c.send(http.MethodPut, "/api/organic-products", in, &out)
	return out, err
}

func (c *Client) DeleteProduct(id string) (products.OrganicProduct, error) {
	var out products.OrganicProduct
	err := c.send(http.MethodDelete, "/api/organic-products", map[string]string{"id": id}, &out)
	return out, err
}

func (c *Client) News() ([]news.Article, error) {
	var out []news.Article
	err := c.get("/api/news", &out)
	return out, err
}

func (c *Client) CreateNews(in news.Article) (news.Article, error) {
	var out news.Article
	err := c.send(http.MethodPost, "/api/news", in, &out)
	return out, err
}

func (c *Client) UpdateNews(in news.Article) (news.Article, error) {
	var out news.Article
	err := c.send(http.MethodPut, "/api/news", in, &out)
	return out, err
}

func (c *Client) DeleteNews(id string) (news.Article, error) {
	var out news.Article
	err := c.send(http.MethodDelete, "/api/news", map[string]string{"id": id}, &out)
	return out, err
}

func (c *Client) Banners() ([]banners.Banner, error) {
	var out []banners.Banner
	err := c.get("/api/banners", &out)
	return out, err
}

func (c *Client) CreateBanner(in banners.Banner) (banners.Banner, error) {
	var out banners.Banner
	err := c.send(http.MethodPost, "/api/banners", in, &out)
	return out, err
}

func (c *Client) UpdateBanner(in banners.Banner) (banners.Banner, error) {
	var out banners.Banner
	err := c.send(http.MethodPut, "/api/banners", in, &out)
	return out, err
}

func (c *Client) DeleteBanner(id string) (banners.Banner, error) {
	var out banners.Banner
	err := c.send(http.MethodDelete, "/api/banners", map[string]string{"id": id}, &out)
	return out, err
}

// Summary fetches the dashboard row counts.
func (c *Client) Summary() (map[string]int64, error) {
	var out map[string]int64
	err := c.get("/api/dashboard/summary", &out)
	return out, err
}
