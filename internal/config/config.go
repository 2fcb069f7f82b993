package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

const (
	CatalogSourceCSV      = "csv"
	CatalogSourcePostgres = "postgres"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// CatalogConfig says where the tool catalog is loaded from and how often it is refreshed
type CatalogConfig struct {
	Source             string `yaml:"source"` // "csv" or "postgres"
	ToolInfoPath       string `yaml:"tool_info_path"`
	ToolsAvailablePath string `yaml:"tools_available_path"`
	RefreshSchedule    string `yaml:"refresh_schedule"` // cron spec with seconds, empty disables refresh
	Live               bool   `yaml:"live"`             // postgres only: query the database on every lookup
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration, applies environment overrides and defaults, and validates the result
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Catalog
	if val := os.Getenv("CATALOG_SOURCE"); val != "" {
		c.Catalog.Source = val
	}
	if val := os.Getenv("TOOL_INFO_PATH"); val != "" {
		c.Catalog.ToolInfoPath = val
	}
	if val := os.Getenv("TOOLS_AVAILABLE_PATH"); val != "" {
		c.Catalog.ToolsAvailablePath = val
	}
	if val := os.Getenv("CATALOG_REFRESH"); val != "" {
		c.Catalog.RefreshSchedule = val
	}
	if val := os.Getenv("CATALOG_LIVE"); val != "" {
		c.Catalog.Live = strings.EqualFold(val, "true") || val == "1"
	}

	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Catalog.Source == "" {
		c.Catalog.Source = CatalogSourceCSV
	}
	c.Catalog.Source = strings.ToLower(c.Catalog.Source)
	if c.Catalog.ToolInfoPath == "" {
		c.Catalog.ToolInfoPath = "data/tool_info.csv"
	}
	if c.Catalog.ToolsAvailablePath == "" {
		c.Catalog.ToolsAvailablePath = "data/tools_available.csv"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Catalog validation
	switch c.Catalog.Source {
	case CatalogSourceCSV:
		if c.Catalog.ToolInfoPath == "" || c.Catalog.ToolsAvailablePath == "" {
			return fmt.Errorf("csv catalog requires tool_info_path and tools_available_path")
		}
		if c.Catalog.Live {
			return fmt.Errorf("live catalog lookups require the postgres source")
		}
	case CatalogSourcePostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if c.Database.User == "" {
			return fmt.Errorf("database user is required")
		}
		if c.Database.Database == "" {
			return fmt.Errorf("database name is required")
		}
	default:
		return fmt.Errorf("unsupported catalog source: %q", c.Catalog.Source)
	}

	if c.Catalog.RefreshSchedule != "" {
		parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
		if _, err := parser.Parse(c.Catalog.RefreshSchedule); err != nil {
			return fmt.Errorf("invalid catalog refresh schedule %q: %w", c.Catalog.RefreshSchedule, err)
		}
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
