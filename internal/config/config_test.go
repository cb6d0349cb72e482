package config

import (
	"reflect"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ALLOWED_ORIGINS", "*")
	t.Setenv("CSV_PATH", "./data/interacoes.csv")
	t.Setenv("DB_PATH", "./data/continha.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"*"}) {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}

func TestLoad_SplitsOrigins(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com ,")
	t.Setenv("CSV_PATH", "/tmp/log.csv")
	t.Setenv("DB_PATH", "/tmp/log.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if !reflect.DeepEqual(cfg.AllowedOrigins, want) {
		t.Errorf("AllowedOrigins = %v, want %v", cfg.AllowedOrigins, want)
	}
}

func TestLoad_EmptyPortRejected(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "*")
	t.Setenv("CSV_PATH", "/tmp/log.csv")
	t.Setenv("DB_PATH", "/tmp/log.db")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for empty PORT")
	}
}

func TestValidate(t *testing.T) {
	valid := &Config{Port: "8080", AllowedOrigins: []string{"*"}, CSVPath: "a.csv", DBPath: "a.db"}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	missing := &Config{Port: "8080", CSVPath: "a.csv", DBPath: "a.db"}
	if err := missing.Validate(); err == nil {
		t.Error("config without origins accepted")
	}
}
