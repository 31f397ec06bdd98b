package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Setenv("MINIFEED_DATABASE_DSN", "file:test.db?_foreign_keys=1")
	t.Setenv("MINIFEED_KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("PORT", "8123")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Database.DSN != "file:test.db?_foreign_keys=1" {
		t.Errorf("Expected database DSN from env, got: %s", cfg.Database.DSN)
	}
	if cfg.Server.Port != 8123 {
		t.Errorf("Expected port from PORT, got: %d", cfg.Server.Port)
	}
	if !cfg.Kafka.Enabled || len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "k2:9092" {
		t.Errorf("Unexpected kafka config: %+v", cfg.Kafka)
	}
	if cfg.Redis.Enabled {
		t.Error("Redis should be disabled without a URL")
	}
	if cfg.Session.PasswordScheme != "sha256" {
		t.Errorf("Expected sha256 default scheme, got: %s", cfg.Session.PasswordScheme)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Host: "127.0.0.1", Port: 5000},
			Database: DatabaseConfig{Driver: "sqlite", DSN: "mini_fb.db"},
			Session: SessionConfig{
				Secret:         "s",
				TTL:            time.Hour,
				CookieName:     "session",
				PasswordScheme: "sha256",
			},
		}
	}

	if err := valid().Validate(); err != nil {
		t.Errorf("Valid config should not error: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown driver", func(c *Config) { c.Database.Driver = "oracle" }},
		{"empty dsn", func(c *Config) { c.Database.DSN = "" }},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }},
		{"empty secret", func(c *Config) { c.Session.Secret = "" }},
		{"zero ttl", func(c *Config) { c.Session.TTL = 0 }},
		{"unknown scheme", func(c *Config) { c.Session.PasswordScheme = "md5" }},
		{"kafka without topic", func(c *Config) {
			c.Kafka = KafkaConfig{Brokers: []string{"k:9092"}, Enabled: true}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}
