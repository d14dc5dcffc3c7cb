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
	if cfg.DB.Port != "5432" || cfg.DB.DBName != "cardstock" {
		t.Errorf("DB defaults = %+v", cfg.DB)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("server port = %q", cfg.Server.Port)
	}
	if cfg.Auth.UserFile != "users.json" {
		t.Errorf("user file = %q", cfg.Auth.UserFile)
	}
	if cfg.Scrape.PreviewTTL != 15*time.Minute {
		t.Errorf("preview ttl = %v", cfg.Scrape.PreviewTTL)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("SCRAPE_TIMEOUT", "5s")
	t.Setenv("SCRAPE_REQUESTS_PER_MINUTE", "not a number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DB.Host != "db.internal" {
		t.Errorf("host = %q", cfg.DB.Host)
	}
	if cfg.DB.MaxOpenConns != 25 {
		t.Errorf("max open conns = %d", cfg.DB.MaxOpenConns)
	}
	if cfg.Scrape.Timeout != 5*time.Second {
		t.Errorf("scrape timeout = %v", cfg.Scrape.Timeout)
	}
	// unparsable values fall back to the default
	if cfg.Scrape.RequestsPerMinute != 10 {
		t.Errorf("requests per minute = %d", cfg.Scrape.RequestsPerMinute)
	}
}

func TestGetDSN(t *testing.T) {
	db := DBConfig{Host: "h", Port: "5432", User: "u", Password: "p", DBName: "d", SSLMode: "disable"}
	want := "host=h port=5432 user=u password=p dbname=d sslmode=disable"
	if got := db.GetDSN(); got != want {
		t.Errorf("GetDSN() = %q, want %q", got, want)
	}
}
