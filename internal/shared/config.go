package shared

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Catalog sources accepted by [CatalogConfig.Source].
const (
	CatalogEmbedded = "embedded"
	CatalogFile     = "file"
	CatalogSQLite   = "sqlite"
)

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Chat     ChatConfig     `toml:"chat"`
	Player   PlayerConfig   `toml:"player"`
	Log      LogConfig      `toml:"log"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// CatalogConfig selects where the course catalog is loaded from.
type CatalogConfig struct {
	Source string `toml:"source"`
	Path   string `toml:"path"`
}

// ChatConfig contains the answer endpoint and chat widget settings.
type ChatConfig struct {
	Endpoint        string  `toml:"endpoint"`
	Path            string  `toml:"path"`
	Greeting        string  `toml:"greeting"`
	ScrollThreshold int     `toml:"scroll_threshold"`
	TimeoutSeconds  int     `toml:"timeout_seconds"`
	RateLimit       float64 `toml:"rate_limit"`
	RateBurst       int     `toml:"rate_burst"`
}

// Timeout converts TimeoutSeconds to a [time.Duration]; zero means no timeout.
func (c ChatConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// PlayerConfig describes the external media player.
type PlayerConfig struct {
	Command  string   `toml:"command"`
	Args     []string `toml:"args"`
	Autoplay bool     `toml:"autoplay"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep the embedded defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// Validate reports the first invalid setting, wrapped in [ErrInvalidConfig].
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port %d out of range", ErrInvalidConfig, c.Server.Port)
	}
	switch c.Catalog.Source {
	case CatalogEmbedded, CatalogSQLite:
	case CatalogFile:
		if c.Catalog.Path == "" {
			return fmt.Errorf("%w: catalog.path is required when catalog.source = %q", ErrInvalidConfig, CatalogFile)
		}
	default:
		return fmt.Errorf("%w: unknown catalog.source %q", ErrInvalidConfig, c.Catalog.Source)
	}
	if c.Chat.ScrollThreshold < 0 {
		return fmt.Errorf("%w: chat.scroll_threshold must not be negative", ErrInvalidConfig)
	}
	if c.Chat.TimeoutSeconds < 0 {
		return fmt.Errorf("%w: chat.timeout_seconds must not be negative", ErrInvalidConfig)
	}
	return nil
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
