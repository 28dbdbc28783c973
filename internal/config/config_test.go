package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tirasundara/lotto-reward/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.TicketPrice != 1000 {
		t.Errorf("Expected ticket price 1000, got %d", cfg.TicketPrice)
	}
	if cfg.Currency.Suffix != "원" {
		t.Errorf("Expected currency suffix 원, got %q", cfg.Currency.Suffix)
	}
	if cfg.Currency.Locale != "ko" {
		t.Errorf("Expected locale ko, got %q", cfg.Currency.Locale)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Expected output format text, got %q", cfg.Output.Format)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Expected port 8080, got %q", cfg.Server.Port)
	}
	if cfg.TicketPriceDecimal().String() != "1000" {
		t.Errorf("Expected decimal ticket price 1000, got %s", cfg.TicketPriceDecimal())
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := []byte("ticket_price: 2000\ncurrency:\n  locale: en\n  suffix: \" KRW\"\noutput:\n  format: json\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv("LOTTO_SERVER_PORT", "9090")

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.TicketPrice != 2000 {
		t.Errorf("Expected ticket price 2000, got %d", cfg.TicketPrice)
	}
	if cfg.Currency.Suffix != " KRW" {
		t.Errorf("Expected currency suffix ' KRW', got %q", cfg.Currency.Suffix)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Expected output format json, got %q", cfg.Output.Format)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("Expected port from env 9090, got %q", cfg.Server.Port)
	}
}

func TestLoad_InvalidTicketPrice(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("ticket_price: 0\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := config.Load(dir)
	if !errors.Is(err, config.ErrInvalidTicketPrice) {
		t.Errorf("Expected ErrInvalidTicketPrice, got %v", err)
	}
}
