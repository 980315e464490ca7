package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Data.SampleSize != 1000 {
		t.Errorf("expected default sample size 1000, got %d", cfg.Data.SampleSize)
	}
	if cfg.Data.TableRows != 10 {
		t.Errorf("expected default table rows 10, got %d", cfg.Data.TableRows)
	}
	if cfg.Data.Seed != 1 {
		t.Errorf("expected default seed 1, got %d", cfg.Data.Seed)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("BSTAT_SAMPLE_SIZE", "250")
	t.Setenv("BSTAT_SEED", "42")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Data.SampleSize != 250 {
		t.Errorf("expected sample size 250, got %d", cfg.Data.SampleSize)
	}
	if cfg.Data.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Data.Seed)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("BSTAT_SAMPLE_SIZE", "-5")

	if _, err := Load(); err == nil {
		t.Fatal("expected a validation error for a negative sample size")
	}
}
