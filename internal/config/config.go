package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"quotefinder/internal/domain"
)

// Environments understood by the client. prod talks to the API directly,
// everything else goes through the proxy prefix.
const (
	EnvProd  = "prod"
	EnvLocal = "local"
	EnvDev   = "dev"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Env     string        `toml:"env"`
	API     APIConfig     `toml:"api"`
	Logging LoggingConfig `toml:"logging"`
	Metrics MetricsConfig `toml:"metrics"`
	UI      UISettings    `toml:"ui"`
}

// APIConfig locates the quote server
type APIConfig struct {
	BaseURL        string   `toml:"base_url"`
	ProxyPrefix    string   `toml:"proxy_prefix"`
	TopK           int      `toml:"top_k"`
	RequestTimeout Duration `toml:"request_timeout"` // 0 disables the timeout
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
	File  string `toml:"file"`
}

// MetricsConfig controls the optional Prometheus endpoint
type MetricsConfig struct {
	Addr string `toml:"addr"` // empty disables the endpoint
}

// UISettings represents UI-related configuration
type UISettings struct {
	DefaultSpeaker string `toml:"default_speaker"`
	ShowStats      bool   `toml:"show_stats"`
}

// Duration lets TOML carry values like "5s"
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Dir returns the quotefinder config directory
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "quotefinder")
}

// DefaultPath is where Load looks when no path is given
func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// GetEnv returns the environment from QUOTEFINDER_ENV, defaulting to local
func GetEnv() string {
	if env := os.Getenv("QUOTEFINDER_ENV"); env != "" {
		return env
	}
	return EnvLocal
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{
		Env: GetEnv(),
		UI: UISettings{
			ShowStats: true,
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

// Load reads the config file at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML after ${VAR} expansion, then applies defaults and validates
func Parse(data []byte) (*Config, error) {
	data = expandEnvVars(data)

	cfg := Config{UI: UISettings{ShowStats: true}}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the configuration to path
func Save(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ApplyDefaults fills empty fields with default values
func (c *Config) ApplyDefaults() {
	if c.Env == "" {
		c.Env = GetEnv()
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = "http://localhost:8000"
	}
	if c.API.ProxyPrefix == "" {
		c.API.ProxyPrefix = "/api"
	}
	if c.API.TopK <= 0 {
		c.API.TopK = 10
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.File == "" {
		c.Logging.File = filepath.Join(Dir(), "quotefinder.log")
	}
}

// Validate checks the configuration for correctness
func (c *Config) Validate() error {
	switch c.Env {
	case EnvProd, EnvLocal, EnvDev:
	default:
		return fmt.Errorf("%w: env must be prod, local or dev, got %q", ErrInvalid, c.Env)
	}

	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: api.base_url must be an absolute URL, got %q", ErrInvalid, c.API.BaseURL)
	}
	if !strings.HasPrefix(c.API.ProxyPrefix, "/") {
		return fmt.Errorf("%w: api.proxy_prefix must start with '/', got %q", ErrInvalid, c.API.ProxyPrefix)
	}
	if c.API.TopK > 100 {
		return fmt.Errorf("%w: api.top_k must be at most 100, got %d", ErrInvalid, c.API.TopK)
	}
	if c.API.RequestTimeout.Duration < 0 {
		return fmt.Errorf("%w: api.request_timeout must not be negative", ErrInvalid)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level must be debug, info, warn or error, got %q", ErrInvalid, c.Logging.Level)
	}

	if _, err := domain.ParseSpeaker(c.UI.DefaultSpeaker); err != nil {
		return fmt.Errorf("%w: ui.default_speaker: %v", ErrInvalid, err)
	}
	return nil
}

// IsProd reports whether requests go straight to the API base
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1])
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
