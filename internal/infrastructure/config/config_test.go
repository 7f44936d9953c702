package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.HTTP.Addr != ":8080" || c.Pricing.TaxRate != 0.05 || c.Pricing.MaxAttempts != 3 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.Tables.LineItems != "quote_line_items" || c.Tables.Totals != "quote_totals" {
		t.Fatalf("unexpected table defaults: %+v", c.Tables)
	}
	if c.Redis.TotalsTTL != 10*time.Minute {
		t.Fatalf("unexpected ttl: %v", c.Redis.TotalsTTL)
	}
	if c.Payments.ClaimTTL != 15*time.Minute {
		t.Fatalf("unexpected claim ttl: %v", c.Payments.ClaimTTL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("PRICING_TAX_RATE", "0.13")
	t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://admin.example.com, https://app.example.com ,")
	t.Setenv("PAYMENTS_MOCK", "true")

	c, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.HTTP.Addr != ":9090" || c.Pricing.TaxRate != 0.13 || c.DynamoDB.Endpoint != "http://dynamodb:8000" {
		t.Fatalf("env overrides not applied: %+v", c)
	}
	if len(c.CORS.AllowedOrigins) != 2 || c.CORS.AllowedOrigins[1] != "https://app.example.com" {
		t.Fatalf("unexpected origins: %v", c.CORS.AllowedOrigins)
	}
	if !c.Payments.Mock {
		t.Fatalf("expected mock payments")
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "app:\n  env: dev\npricing:\n  max_attempts: 0\njwt:\n  secret: s3cret\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsDev() || c.JWT.Secret != "s3cret" {
		t.Fatalf("file values not loaded: %+v", c)
	}
	if c.Pricing.MaxAttempts != 1 {
		t.Fatalf("max attempts must be clamped to 1, got %d", c.Pricing.MaxAttempts)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestLoad_MissingFileFallsBackToEnv(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
}

func TestValidate(t *testing.T) {
	var c Config
	if err := c.Validate(); err != ErrMissingJWTSecret {
		t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
	}
}
