package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	SnapshotDBPath  string
	OrderEmailURL   string
	SubmitTimeout   time.Duration
	ShutdownTimeout time.Duration
	StoreName       string
	StoreOwnerEmail string
	CORSOrigins     []string
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		SnapshotDBPath:  envOrDefault("SNAPSHOT_DB_PATH", "storefront.db"),
		OrderEmailURL:   envOrDefault("ORDER_EMAIL_URL", "http://localhost:8080/api/send-order-email"),
		SubmitTimeout:   envDuration("SUBMIT_TIMEOUT_SECONDS", 15*time.Second),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		StoreName:       envOrDefault("STORE_NAME", "Sher-e-Punjab"),
		StoreOwnerEmail: envOrDefault("STORE_OWNER_EMAIL", "sher.e.punjab.store2025@gmail.com"),
		CORSOrigins:     envList("CORS_ORIGINS", []string{"http://localhost:3000"}),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
