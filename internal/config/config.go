package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr             string
	ShutdownTimeout      time.Duration
	GeminiAPIKey         string
	GeminiBaseURL        string
	OrderProcessingDelay time.Duration
	AllowedOrigins       []string
}

// FromEnv builds Config with defaults, overridden by environment variables.
// GEMINI_API_KEY has no default; when absent the recommendation feature is
// disabled while the rest of the storefront keeps working.
func FromEnv() Config {
	return Config{
		HTTPAddr:             envOrDefault("HTTP_ADDR", ":8080"),
		ShutdownTimeout:      envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		GeminiAPIKey:         os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL:        envOrDefault("GEMINI_BASE_URL", ""),
		OrderProcessingDelay: envMillis("ORDER_PROCESSING_MS", 2*time.Second),
		AllowedOrigins:       envList("ALLOWED_ORIGINS", []string{"*"}),
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

func envMillis(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		ms, err := strconv.Atoi(v)
		if err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return def
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
