package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "MINIFEED"

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Session   SessionConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Logging   LoggingConfig
	Telemetry TelemetryConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host  string
	Port  int
	Debug bool
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver       string // sqlite, mysql or postgres
	DSN          string
	MaxOpenConns int
}

// SessionConfig holds login session and password configuration
type SessionConfig struct {
	Secret         string
	TTL            time.Duration
	CookieName     string
	CookieSecure   bool
	PasswordScheme string // sha256 or bcrypt
}

// RedisConfig holds the optional session registry configuration
type RedisConfig struct {
	URL     string
	Enabled bool
}

// KafkaConfig holds the optional activity stream configuration
type KafkaConfig struct {
	Brokers []string
	Topic   string
	Enabled bool
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string // "json" or "text"
}

// TelemetryConfig holds metrics configuration
type TelemetryConfig struct {
	MetricsEnabled bool
	ServiceName    string
}

// Load loads configuration from defaults, an optional config file and the environment.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// Hosting platforms hand the port over as a bare PORT variable.
	_ = v.BindEnv("http_server_port", EnvPrefix+"_HTTP_SERVER_PORT", "PORT")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.minifeed")
	v.AddConfigPath("/etc/minifeed")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_server_host", "0.0.0.0")
	v.SetDefault("http_server_port", 5000)
	v.SetDefault("debug", false)
	v.SetDefault("database_driver", "sqlite")
	v.SetDefault("database_dsn", "mini_fb.db?_foreign_keys=1")
	v.SetDefault("database_max_open_conns", 10)
	v.SetDefault("session_secret", "change-me-to-a-random-secret")
	v.SetDefault("session_ttl", 7*24*time.Hour)
	v.SetDefault("session_cookie", "session")
	v.SetDefault("session_cookie_secure", false)
	v.SetDefault("password_scheme", "sha256")
	v.SetDefault("redis_url", "")
	v.SetDefault("kafka_brokers", "")
	v.SetDefault("kafka_topic", "minifeed.activity")
	v.SetDefault("log_level", "INFO")
	v.SetDefault("log_format", "json")
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("service_name", "minifeed")
}

func fromViper(v *viper.Viper) *Config {
	brokers := splitList(v.GetString("kafka_brokers"))
	redisURL := v.GetString("redis_url")

	return &Config{
		Server: ServerConfig{
			Host:  v.GetString("http_server_host"),
			Port:  v.GetInt("http_server_port"),
			Debug: v.GetBool("debug"),
		},
		Database: DatabaseConfig{
			Driver:       strings.ToLower(v.GetString("database_driver")),
			DSN:          v.GetString("database_dsn"),
			MaxOpenConns: v.GetInt("database_max_open_conns"),
		},
		Session: SessionConfig{
			Secret:         v.GetString("session_secret"),
			TTL:            v.GetDuration("session_ttl"),
			CookieName:     v.GetString("session_cookie"),
			CookieSecure:   v.GetBool("session_cookie_secure"),
			PasswordScheme: strings.ToLower(v.GetString("password_scheme")),
		},
		Redis: RedisConfig{
			URL:     redisURL,
			Enabled: redisURL != "",
		},
		Kafka: KafkaConfig{
			Brokers: brokers,
			Topic:   v.GetString("kafka_topic"),
			Enabled: len(brokers) > 0,
		},
		Logging: LoggingConfig{
			Level:  v.GetString("log_level"),
			Format: v.GetString("log_format"),
		},
		Telemetry: TelemetryConfig{
			MetricsEnabled: v.GetBool("metrics_enabled"),
			ServiceName:    v.GetString("service_name"),
		},
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite", "mysql", "postgres":
	default:
		return fmt.Errorf("database_driver must be one of sqlite, mysql, postgres; got %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("database_dsn is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("http_server_port must be between 1 and 65535")
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("session_secret is required")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session_ttl must be positive")
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("session_cookie is required")
	}
	switch c.Session.PasswordScheme {
	case "sha256", "bcrypt":
	default:
		return fmt.Errorf("password_scheme must be sha256 or bcrypt; got %q", c.Session.PasswordScheme)
	}
	if c.Kafka.Enabled && c.Kafka.Topic == "" {
		return fmt.Errorf("kafka_topic is required when kafka_brokers is set")
	}
	return nil
}

// Addr returns the listen address of the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
