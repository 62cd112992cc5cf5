package config

import (
	"testing"
	"time"

	"github.com/Zachkp/folio/internal/theme"
)

func TestDefault(t *testing.T) {
	t.Parallel()
	cfg := Default()
	if cfg.Port != "8080" {
		t.Errorf("Port=%q, want 8080", cfg.Port)
	}
	if cfg.DBPath != "folio.db" {
		t.Errorf("DBPath=%q, want folio.db", cfg.DBPath)
	}
	if cfg.DefaultScheme != theme.EffectiveLight {
		t.Errorf("DefaultScheme=%q, want light", cfg.DefaultScheme)
	}
	if cfg.PrefsFile == "" {
		t.Error("PrefsFile should not be empty")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", "")
	t.Setenv("PREFERENCE_RETENTION", "720h")
	t.Setenv("CONTENT_PATH", "me.yaml")
	t.Setenv("IMAGES_DIR", "/srv/images")
	t.Setenv("DEFAULT_COLOR_SCHEME", "dark")
	t.Setenv("PREFS_FILE", "/tmp/prefs.json")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("Port=%q", cfg.Port)
	}
	if cfg.DBPath != "" {
		t.Errorf("DBPath=%q, want empty (cookie store)", cfg.DBPath)
	}
	if cfg.PreferenceRetention != 720*time.Hour {
		t.Errorf("PreferenceRetention=%s", cfg.PreferenceRetention)
	}
	if cfg.ContentPath != "me.yaml" || cfg.ImagesDir != "/srv/images" {
		t.Errorf("ContentPath=%q ImagesDir=%q", cfg.ContentPath, cfg.ImagesDir)
	}
	if cfg.DefaultScheme != theme.EffectiveDark {
		t.Errorf("DefaultScheme=%q, want dark", cfg.DefaultScheme)
	}
	if cfg.PrefsFile != "/tmp/prefs.json" {
		t.Errorf("PrefsFile=%q", cfg.PrefsFile)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("PREFERENCE_RETENTION", "forever")
	t.Setenv("DEFAULT_COLOR_SCHEME", "system")

	cfg := Load()
	def := Default()
	if cfg.PreferenceRetention != def.PreferenceRetention {
		t.Errorf("PreferenceRetention=%s, want %s", cfg.PreferenceRetention, def.PreferenceRetention)
	}
	if cfg.DefaultScheme != def.DefaultScheme {
		t.Errorf("DefaultScheme=%q, want %q", cfg.DefaultScheme, def.DefaultScheme)
	}
}
