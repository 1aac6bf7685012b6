package app

import "testing"

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("expected HTTPAddr :8080, got %s", cfg.HTTPAddr)
	}
	if cfg.MetricsAddr != ":9090" {
		t.Errorf("expected MetricsAddr :9090, got %s", cfg.MetricsAddr)
	}
}

func TestConfig_ZeroValue(t *testing.T) {
	var cfg Config

	if cfg.HTTPAddr != "" {
		t.Errorf("zero value HTTPAddr should be empty, got %s", cfg.HTTPAddr)
	}
	if cfg.MetricsAddr != "" {
		t.Errorf("zero value MetricsAddr should be empty, got %s", cfg.MetricsAddr)
	}
}

func TestConfig_Copy(t *testing.T) {
	original := DefaultConfig()
	copied := original

	copied.HTTPAddr = ":8081"

	if original.HTTPAddr != ":8080" {
		t.Error("original config was modified")
	}
	if copied.HTTPAddr != ":8081" {
		t.Error("copy was not modified")
	}
}
