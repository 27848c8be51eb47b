package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the resolved runtime configuration for the auth service.
// It merges file defaults and environment overrides to support both local and deployed runs.
type Config struct {
	ServiceID string

	HTTPPort int
	GRPCPort int

	DatabaseURL string
	RedisURL    string

	MailHost     string
	MailPort     int
	MailUsername string
	MailPassword string
	MailFrom     string

	SessionValidity  time.Duration
	RecoveryValidity time.Duration

	MaxDBConns      int32
	JanitorInterval time.Duration
}

// configFile mirrors the YAML schema used by configs/default.yaml.
// It is intentionally separate from Config so runtime-only fields stay internal.
type configFile struct {
	Service struct {
		ID       string `yaml:"id"`
		HTTPPort int    `yaml:"http_port"`
		GRPCPort int    `yaml:"grpc_port"`
	} `yaml:"service"`
	Dependencies struct {
		PostgresURL string `yaml:"postgres_url"`
		RedisURL    string `yaml:"redis_url"`
	} `yaml:"dependencies"`
	Mail struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		From     string `yaml:"from"`
	} `yaml:"mail"`
}

// LoadConfig resolves configuration in priority order: defaults -> file -> env.
// This order keeps local bootstrap simple while allowing environment-specific overrides.
func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID:        "auth-service",
		HTTPPort:         8080,
		GRPCPort:         9090,
		MailPort:         587,
		MailFrom:         "no-reply@localhost",
		SessionValidity:  24 * time.Hour,
		RecoveryValidity: 5 * time.Minute,
		MaxDBConns:       20,
		JanitorInterval:  5 * time.Minute,
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var f configFile
		if unmarshalErr := yaml.Unmarshal(raw, &f); unmarshalErr != nil {
			return Config{}, fmt.Errorf("parse config file: %w", unmarshalErr)
		}
		if f.Service.ID != "" {
			cfg.ServiceID = f.Service.ID
		}
		if f.Service.HTTPPort > 0 {
			cfg.HTTPPort = f.Service.HTTPPort
		}
		if f.Service.GRPCPort > 0 {
			cfg.GRPCPort = f.Service.GRPCPort
		}
		if f.Dependencies.PostgresURL != "" {
			cfg.DatabaseURL = f.Dependencies.PostgresURL
		}
		if f.Dependencies.RedisURL != "" {
			cfg.RedisURL = f.Dependencies.RedisURL
		}
		if f.Mail.Host != "" {
			cfg.MailHost = f.Mail.Host
		}
		if f.Mail.Port > 0 {
			cfg.MailPort = f.Mail.Port
		}
		if f.Mail.Username != "" {
			cfg.MailUsername = f.Mail.Username
		}
		if f.Mail.Password != "" {
			cfg.MailPassword = f.Mail.Password
		}
		if f.Mail.From != "" {
			cfg.MailFrom = f.Mail.From
		}
	}

	cfg.DatabaseURL = envOrDefault("DB_URL", envOrDefault("POSTGRES_URL", cfg.DatabaseURL))
	cfg.RedisURL = envOrDefault("REDIS_URL", cfg.RedisURL)
	cfg.MailHost = envOrDefault("MAIL_HOST", cfg.MailHost)
	cfg.MailPort = envInt("MAIL_PORT", cfg.MailPort)
	cfg.MailUsername = envOrDefault("MAIL_USER", cfg.MailUsername)
	cfg.MailPassword = envOrDefault("MAIL_PASSWORD", cfg.MailPassword)
	cfg.MailFrom = envOrDefault("MAIL_FROM", cfg.MailFrom)

	cfg.HTTPPort = envInt("HTTP_PORT", cfg.HTTPPort)
	cfg.GRPCPort = envInt("GRPC_PORT", cfg.GRPCPort)
	cfg.MaxDBConns = int32(envInt("DB_MAX_CONNS", int(cfg.MaxDBConns)))

	cfg.SessionValidity = time.Duration(envInt("SESSION_VALIDITY_HOURS", int(cfg.SessionValidity.Hours()))) * time.Hour
	cfg.RecoveryValidity = time.Duration(envInt("RECOVERY_VALIDITY_MINUTES", int(cfg.RecoveryValidity.Minutes()))) * time.Minute
	cfg.JanitorInterval = time.Duration(envInt("JANITOR_INTERVAL_SECONDS", int(cfg.JanitorInterval.Seconds()))) * time.Second

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("missing DB_URL/POSTGRES_URL")
	}

	return cfg, nil
}

// envOrDefault returns an env var when present, otherwise the provided fallback.
func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

// envInt parses integer env vars with safe fallback on empty/invalid values.
func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
