// Package config reads runtime settings from the environment. A .env file in
// the working directory is loaded by main before Load runs.
package config

import (
	"log"
	"os"
	"time"

	"github.com/Zachkp/folio/internal/theme"
)

// Config holds the server and preview settings.
type Config struct {
	Port    string
	GinMode string

	// DBPath is the SQLite file for visitor preferences. Empty keeps the
	// preference in a cookie instead.
	DBPath              string
	PreferenceRetention time.Duration

	ContentPath string
	ImagesDir   string

	// DefaultScheme is used for "system" when the browser sends no hint.
	DefaultScheme theme.Effective

	// PrefsFile holds the terminal preview's preference.
	PrefsFile string
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	prefs, err := theme.DefaultFilePath()
	if err != nil {
		prefs = ".folio.json"
	}
	return Config{
		Port:                "8080",
		DBPath:              "folio.db",
		PreferenceRetention: 365 * 24 * time.Hour,
		ImagesDir:           "./images",
		DefaultScheme:       theme.EffectiveLight,
		PrefsFile:           prefs,
	}
}

// Load reads PORT, GIN_MODE, DB_PATH, PREFERENCE_RETENTION, CONTENT_PATH,
// IMAGES_DIR, DEFAULT_COLOR_SCHEME and PREFS_FILE. Invalid values are logged
// and replaced by defaults.
func Load() Config {
	cfg := Default()
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	cfg.GinMode = os.Getenv("GIN_MODE")
	if v, ok := os.LookupEnv("DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v := os.Getenv("PREFERENCE_RETENTION"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			log.Printf("WARNING: ignoring PREFERENCE_RETENTION=%q, using %s", v, cfg.PreferenceRetention)
		} else {
			cfg.PreferenceRetention = d
		}
	}
	cfg.ContentPath = os.Getenv("CONTENT_PATH")
	if v := os.Getenv("IMAGES_DIR"); v != "" {
		cfg.ImagesDir = v
	}
	if v := os.Getenv("DEFAULT_COLOR_SCHEME"); v != "" {
		if e, ok := theme.ParseEffective(v); ok {
			cfg.DefaultScheme = e
		} else {
			log.Printf("WARNING: ignoring DEFAULT_COLOR_SCHEME=%q, using %s", v, cfg.DefaultScheme)
		}
	}
	if v := os.Getenv("PREFS_FILE"); v != "" {
		cfg.PrefsFile = v
	}
	return cfg
}
