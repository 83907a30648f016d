package config

import (
	"reflect"
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "SHUTDOWN_TIMEOUT_SECONDS", "ORDER_PROCESSING_MS", "ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}
	cfg := FromEnv()
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.HTTPAddr)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected 10s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
	if cfg.OrderProcessingDelay != 2*time.Second {
		t.Fatalf("expected 2s processing delay, got %v", cfg.OrderProcessingDelay)
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"*"}) {
		t.Fatalf("expected wildcard origins, got %v", cfg.AllowedOrigins)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "3")
	t.Setenv("ORDER_PROCESSING_MS", "50")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg := FromEnv()
	if cfg.HTTPAddr != ":9000" {
		t.Fatalf("got %q", cfg.HTTPAddr)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("got %v", cfg.ShutdownTimeout)
	}
	if cfg.OrderProcessingDelay != 50*time.Millisecond {
		t.Fatalf("got %v", cfg.OrderProcessingDelay)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.AllowedOrigins, want) {
		t.Fatalf("got %v", cfg.AllowedOrigins)
	}
}

func TestFromEnvBadValuesFallBack(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "soon")
	t.Setenv("ORDER_PROCESSING_MS", "-5")
	t.Setenv("ALLOWED_ORIGINS", " , ,")

	cfg := FromEnv()
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("got %v", cfg.ShutdownTimeout)
	}
	if cfg.OrderProcessingDelay != 2*time.Second {
		t.Fatalf("got %v", cfg.OrderProcessingDelay)
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"*"}) {
		t.Fatalf("got %v", cfg.AllowedOrigins)
	}
}
