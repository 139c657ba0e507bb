package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// Config holds the server configuration read from the environment.
type Config struct {
	// Port the HTTP server listens on.
	Port string

	// DatabaseURL is the Postgres DSN (Supabase connection string in prod).
	DatabaseURL string

	// OriginsFile optionally points at a YAML file with the CORS allow-list.
	OriginsFile string
}

// DefaultOrigins is the built-in CORS allow-list used when no origins file is
// configured. Covers local dev servers and the hosted admin panel.
var DefaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"https://admin.agripanel.com",
	"https://agripanel-admin.vercel.app",
}

// LoadFromEnv loads server configuration from environment variables.
//
// Environment variables:
//   - PORT: listen port (default: 5050)
//   - DATABASE_URL: Postgres DSN (required by db.Connect)
//   - CORS_ORIGINS_FILE: optional YAML allow-list file
func LoadFromEnv() Config {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "5050"
	}

	return Config{
		Port:        port,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		OriginsFile: strings.TrimSpace(os.Getenv("CORS_ORIGINS_FILE")),
	}
}

type originsFile struct {
	Origins []string `yaml:"origins"`
}

// LoadOrigins returns the CORS allow-list for this deployment. With no file
// configured the built-in defaults are returned; a configured but unreadable
// or empty file is an error so a typo doesn't silently open nothing.
func (c Config) LoadOrigins() ([]string, error) {
	if c.OriginsFile == "" {
		return DefaultOrigins, nil
	}

	raw, err := os.ReadFile(c.OriginsFile)
	if err != nil {
		return nil, fmt.Errorf("read origins file: %w", err)
	}

	var parsed originsFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse origins file: %w", err)
	}
	if len(parsed.Origins) == 0 {
		return nil, fmt.Errorf("origins file %s lists no origins", c.OriginsFile)
	}
	return parsed.Origins, nil
}
