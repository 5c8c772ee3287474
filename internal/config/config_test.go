package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != "" {
		t.Errorf("expected empty default addr, got %q", cfg.Addr)
	}
	if cfg.StepDelay != 550*time.Millisecond {
		t.Errorf("expected default step delay 550ms, got %s", cfg.StepDelay)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MENAVKY_ADDR", "127.0.0.1:9999")
	t.Setenv("MENAVKY_STEP_DELAY", "100ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9999" {
		t.Errorf("expected addr from env, got %q", cfg.Addr)
	}
	if cfg.StepDelay != 100*time.Millisecond {
		t.Errorf("expected 100ms step delay, got %s", cfg.StepDelay)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("MENAVKY_STEP_DELAY", "not-a-duration")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unparsable step delay")
	}

	t.Setenv("MENAVKY_STEP_DELAY", "-1s")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative step delay")
	}
}
