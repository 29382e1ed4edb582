package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-sql-driver/mysql"
)

// Config is the process configuration, read once at startup from the
// environment (.env in development via godotenv).
type Config struct {
	Addr  string
	DBDSN string

	CookieSecret      string
	CookieSecure      bool
	SessionCookieName string
	SessionTTL        time.Duration
	CartCookieName    string
	CartTTL           time.Duration

	ShopWhatsApp string
	AdminBaseURL string
}

func FromEnv() (Config, error) {
	cfg := Config{
		Addr:  envOr("ADDR", ":8080"),
		DBDSN: os.Getenv("DB_DSN"),

		CookieSecret:      os.Getenv("COOKIE_SECRET"),
		CookieSecure:      os.Getenv("COOKIE_SECURE") == "true",
		SessionCookieName: envOr("SESSION_COOKIE_NAME", "hp_session"),
		SessionTTL:        durationOr("SESSION_TTL", 7*24*time.Hour),
		CartCookieName:    envOr("CART_COOKIE_NAME", "hp_cart"),
		CartTTL:           durationOr("CART_TTL", 24*time.Hour),

		ShopWhatsApp: envOr("SHOP_WHATSAPP", "27663621868"),
		AdminBaseURL: envOr("ADMIN_BASE_URL", "http://localhost:8080/admin"),
	}

	if cfg.DBDSN == "" {
		return Config{}, fmt.Errorf("DB_DSN environment variable is required")
	}
	if _, err := mysql.ParseDSN(cfg.DBDSN); err != nil {
		return Config{}, fmt.Errorf("invalid DB_DSN: %w", err)
	}
	if cfg.CookieSecret == "" {
		return Config{}, fmt.Errorf("COOKIE_SECRET environment variable is required")
	}
	return cfg, nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func durationOr(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
