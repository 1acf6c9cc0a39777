package config

import (
	"strings"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	t.Run("development defaults run on the memory store", func(t *testing.T) {
		t.Setenv("ENV", "development")
		t.Setenv("STORE", "memory")
		t.Setenv("JWT_SECRET", "")

		cfg, err := Parse()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "8080" {
			t.Errorf("port: want 8080, got %s", cfg.Port)
		}
		if cfg.JWTSecret == "" {
			t.Error("development should fall back to a JWT secret")
		}
		if cfg.TokenTTL != 72*time.Hour {
			t.Errorf("token ttl: want 72h, got %s", cfg.TokenTTL)
		}
		if cfg.MongoDatabase != "medishare" {
			t.Errorf("mongo database: got %s", cfg.MongoDatabase)
		}
	})

	t.Run("production requires a JWT secret", func(t *testing.T) {
		t.Setenv("ENV", "production")
		t.Setenv("STORE", "memory")
		t.Setenv("JWT_SECRET", "")

		_, err := Parse()
		if err == nil || !strings.Contains(err.Error(), "JWT_SECRET") {
			t.Fatalf("want JWT_SECRET error, got %v", err)
		}
	})

	t.Run("CORS origins are comma separated", func(t *testing.T) {
		t.Setenv("ENV", "development")
		t.Setenv("STORE", "memory")
		t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example,https://b.example")

		cfg, err := Parse()
		if err != nil {
			t.Fatal(err)
		}
		if len(cfg.CORSAllowOrigins) != 2 || cfg.CORSAllowOrigins[1] != "https://b.example" {
			t.Fatalf("unexpected origins: %v", cfg.CORSAllowOrigins)
		}
	})
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			JWTSecret:       "s",
			Store:           StoreSQL,
			DBDriver:        DriverPostgres,
			PostgresConnStr: "postgres://localhost/medishare",
			MongoURI:        "mongodb://localhost:27017",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"postgres complete", func(*Config) {}, ""},
		{"mysql needs a dsn", func(c *Config) { c.DBDriver = DriverMySQL }, "MYSQL_DSN"},
		{"mysql complete", func(c *Config) { c.DBDriver = DriverMySQL; c.MySQLDSN = "u:p@tcp(localhost)/m" }, ""},
		{"unknown driver", func(c *Config) { c.DBDriver = "sqlite" }, "DB_DRIVER"},
		{"postgres needs a conn string", func(c *Config) { c.PostgresConnStr = "" }, "POSTGRES_CONN_STR"},
		{"mongo is required", func(c *Config) { c.MongoURI = "" }, "MONGO_URI"},
		{"unknown store", func(c *Config) { c.Store = "files" }, "STORE"},
		{"memory needs no databases", func(c *Config) { *c = Config{JWTSecret: "s", Store: StoreMemory} }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("want error mentioning %s, got %v", tt.wantErr, err)
			}
		})
	}
}
