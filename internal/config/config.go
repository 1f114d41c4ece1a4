package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	DB        DBConfig        `yaml:"db"`
	Reports   ReportsConfig   `yaml:"reports"`
	Log       LogConfig       `yaml:"log"`
	Transport TransportConfig `yaml:"transport"`
	Auth      AuthConfig      `yaml:"auth"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type ReportsConfig struct {
	Dir string `yaml:"dir"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type TransportConfig struct {
	Mode string `yaml:"mode"` // "stdio" or "http"
}

type AuthConfig struct {
	Enabled       bool   `yaml:"enabled"`
	DefaultTenant string `yaml:"default_tenant"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		DB: DBConfig{
			Path: "smallbizpal.db",
		},
		Reports: ReportsConfig{
			Dir: "reports",
		},
		Log: LogConfig{
			Level: "info",
		},
		Transport: TransportConfig{
			Mode: "stdio",
		},
		Auth: AuthConfig{
			Enabled:       false,
			DefaultTenant: "default",
		},
	}

	if path := os.Getenv("SMALLBIZPAL_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("SMALLBIZPAL_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("SMALLBIZPAL_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SMALLBIZPAL_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if dbPath := os.Getenv("SMALLBIZPAL_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if reportsDir := os.Getenv("SMALLBIZPAL_REPORTS_DIR"); reportsDir != "" {
		cfg.Reports.Dir = reportsDir
	}
	if level := os.Getenv("SMALLBIZPAL_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if mode := os.Getenv("SMALLBIZPAL_TRANSPORT_MODE"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if auth := os.Getenv("SMALLBIZPAL_AUTH_ENABLED"); auth != "" {
		enabled, err := strconv.ParseBool(auth)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SMALLBIZPAL_AUTH_ENABLED: %w", err)
		}
		cfg.Auth.Enabled = enabled
	}
	if tenant := os.Getenv("SMALLBIZPAL_DEFAULT_TENANT"); tenant != "" {
		cfg.Auth.DefaultTenant = tenant
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
