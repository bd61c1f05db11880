package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromDir_Missing(t *testing.T) {
	cfg, err := LoadFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFromDir: %v", err)
	}
	if cfg != nil {
		t.Errorf("missing config file should yield nil, got %+v", cfg)
	}
}

func TestLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	content := []byte("dimensioning: true\nnumber:\n  locale: de\n  decimals: 1\n")
	if err := os.WriteFile(filepath.Join(dir, FileName), content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(dir)
	if err != nil {
		t.Fatalf("LoadFromDir: %v", err)
	}
	if cfg == nil {
		t.Fatal("config not found")
	}
	if !cfg.Dimensioning || cfg.Number.Locale != "de" || cfg.Number.Decimals != 1 {
		t.Errorf("cfg = %+v", cfg)
	}

	nf := cfg.NumberFormat()
	if nf.Locale != "de" || nf.Decimals != 1 {
		t.Errorf("NumberFormat = %+v", nf)
	}
}

func TestLoadFromDir_AltNameAndDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileNameAlt), []byte("dimensioning: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(dir)
	if err != nil {
		t.Fatalf("LoadFromDir: %v", err)
	}
	if cfg == nil {
		t.Fatal("alternate config file name not found")
	}
	if cfg.Number.Locale != "en" {
		t.Errorf("default locale = %q, want en", cfg.Number.Locale)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if !cfg.Dimensioning {
		t.Error("default config should enable dimensioning")
	}
	if cfg.Number.Locale != "en" {
		t.Errorf("default locale = %q, want en", cfg.Number.Locale)
	}
}
