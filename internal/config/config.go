package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config is read once at process start and passed to whatever needs it.
// Sources, lowest precedence first: defaults, optional YAML file, environment.
type Config struct {
	Port           string   `mapstructure:"port"`
	Env            string   `mapstructure:"env"`
	SiteURL        string   `mapstructure:"site_url"`
	PresetsFile    string   `mapstructure:"presets_file"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	LogLevel       string   `mapstructure:"log_level"`
	// StaticDir holds the built calculator front-end; skipped when missing.
	StaticDir string `mapstructure:"static_dir"`
}

// env var name per key.
var envKeys = map[string]string{
	"port":            "API_PORT",
	"env":             "API_ENV",
	"site_url":        "SITE_URL",
	"presets_file":    "PRESETS_FILE",
	"allowed_origins": "ALLOWED_ORIGINS",
	"log_level":       "LOG_LEVEL",
	"static_dir":      "STATIC_DIR",
}

// Load builds a Config. path may be empty.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("port", "8080")
	v.SetDefault("env", "development")
	v.SetDefault("site_url", "http://localhost:5173")
	v.SetDefault("presets_file", "")
	v.SetDefault("allowed_origins", []string{})
	v.SetDefault("log_level", "info")
	v.SetDefault("static_dir", "./web/dist")

	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	// ALLOWED_ORIGINS arrives as one comma-separated string.
	c.AllowedOrigins = splitList(c.AllowedOrigins)

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	port, err := strconv.Atoi(c.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("port %q must be a number in 1..65535", c.Port)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Level returns the configured zerolog level; Validate has already checked it.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Origins is the CORS allow-list: the site URL plus any extra origins.
func (c *Config) Origins() []string {
	out := make([]string, 0, len(c.AllowedOrigins)+1)
	seen := map[string]bool{}
	for _, o := range append([]string{c.SiteURL}, c.AllowedOrigins...) {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "" || seen[o] {
			continue
		}
		seen[o] = true
		out = append(out, o)
	}
	return out
}

func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
