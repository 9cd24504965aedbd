package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is everything the service reads from the environment. A .env file
// is loaded in main when present; real environment variables win.
type Config struct {
	Port          string
	BackendURL    string
	AdminUsername string
	AdminPassword string
	HTTPTimeout   time.Duration
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

// Load builds the configuration. BACKEND_URL is the one required setting:
// without the remote backend there is nothing to administer.
func Load() (Config, error) {
	backend := strings.TrimSpace(os.Getenv("BACKEND_URL"))
	if backend == "" {
		return Config{}, fmt.Errorf("BACKEND_URL environment variable is not set")
	}

	timeoutSecs := 15
	if raw := strings.TrimSpace(os.Getenv("HTTP_TIMEOUT_SECONDS")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			timeoutSecs = n
		}
	}

	return Config{
		Port:          envOrDefault("PORT", "8080"),
		BackendURL:    backend,
		AdminUsername: envOrDefault("ADMIN_USERNAME", "admin"),
		AdminPassword: envOrDefault("ADMIN_PASSWORD", "admin123"),
		HTTPTimeout:   time.Duration(timeoutSecs) * time.Second,
	}, nil
}
