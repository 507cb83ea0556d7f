// Package config loads devpalette settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"

	"github.com/jmylchreest/devpalette/internal/colour"
	"github.com/jmylchreest/devpalette/internal/palette"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "DEVPALETTE_"

// DefaultEnvFile is read when no env file is named explicitly.
const DefaultEnvFile = ".env"

// Config holds settings shared by every command. Command-line flags take
// precedence over these values.
type Config struct {
	Count           int
	Method          string
	Bases           []string // "Label=#hex" entries
	BasesFile       string
	Listen          string
	MetricsListen   string // empty serves /metrics on Listen
	LogLevel        string
	TemplateDir     string
	ShutdownTimeout time.Duration
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Count:           palette.DefaultCount,
		Method:          colour.MethodLightness.String(),
		Listen:          "127.0.0.1:8080",
		LogLevel:        "info",
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load reads configuration from getenv, falling back to values in envFile.
// Real environment variables win over the file. A missing default .env file
// is not an error; a missing explicitly named one is.
func Load(envFile string, getenv func(string) string) (*Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	fileVals := map[string]string{}
	explicit := envFile != ""
	if !explicit {
		envFile = DefaultEnvFile
	}

	vals, err := godotenv.Read(envFile)
	switch {
	case err == nil:
		fileVals = vals
	case explicit || !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("failed to read env file %s: %w", envFile, err)
	}

	lookup := func(key string) string {
		if v := getenv(EnvPrefix + key); v != "" {
			return v
		}
		return fileVals[EnvPrefix+key]
	}

	cfg := Default()

	if v := lookup("COUNT"); v != "" {
		cfg.Count = palette.ParseCount(v)
	}
	cfg.Method = getOrDefault(lookup("METHOD"), cfg.Method)
	cfg.Bases = splitList(lookup("BASES"))
	cfg.BasesFile = lookup("BASES_FILE")
	cfg.Listen = getOrDefault(lookup("LISTEN"), cfg.Listen)
	cfg.MetricsListen = lookup("METRICS_LISTEN")
	cfg.LogLevel = strings.ToLower(getOrDefault(lookup("LOG_LEVEL"), cfg.LogLevel))
	cfg.TemplateDir = lookup("TEMPLATE_DIR")

	if v := lookup("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %sSHUTDOWN_TIMEOUT %q: %w", EnvPrefix, v, err)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}

// Params returns the palette parameters described by the configuration.
func (c *Config) Params() (palette.Params, error) {
	method, err := colour.ParseMethod(c.Method)
	if err != nil {
		return palette.Params{}, err
	}
	p := palette.Params{Count: c.Count, Method: method}
	return p, p.Validate()
}

// BaseColours resolves the configured base colours: the bases file first,
// then individual entries on top. With neither set, the defaults are used.
func (c *Config) BaseColours() ([]palette.BaseColour, error) {
	var bases []palette.BaseColour

	if c.BasesFile != "" {
		loaded, err := palette.LoadBaseColours(c.BasesFile)
		if err != nil {
			return nil, err
		}
		bases = loaded
	}

	if len(c.Bases) > 0 {
		specs, err := palette.ParseBaseSpecs(c.Bases)
		if err != nil {
			return nil, err
		}
		bases = palette.Merge(bases, specs...)
	}

	if len(bases) == 0 {
		return palette.DefaultBaseColours(), nil
	}
	return bases, nil
}

// Validate checks the configuration for errors and returns helpful messages.
func (c *Config) Validate() error {
	var errs []string

	if _, err := c.Params(); err != nil {
		errs = append(errs, err.Error())
	}

	if c.BasesFile != "" {
		if _, err := os.Stat(c.BasesFile); err != nil {
			errs = append(errs, fmt.Sprintf("bases file not found: %s", c.BasesFile))
		}
	}
	// Only malformed entries fail here; unresolvable colours fail their own section.
	if _, err := palette.ParseBaseSpecs(c.Bases); err != nil {
		errs = append(errs, err.Error())
	}

	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		errs = append(errs, fmt.Sprintf("unknown log level %q (use trace, debug, info, warn or error)", c.LogLevel))
	}

	if c.Listen == "" {
		errs = append(errs, "listen address is required")
	}
	if c.MetricsListen != "" && c.MetricsListen == c.Listen {
		errs = append(errs, "metrics listen address must differ from listen address")
	}

	if c.ShutdownTimeout <= 0 {
		errs = append(errs, "shutdown timeout must be positive")
	}

	if c.TemplateDir != "" {
		if info, err := os.Stat(c.TemplateDir); err != nil || !info.IsDir() {
			errs = append(errs, fmt.Sprintf("template directory not found: %s", c.TemplateDir))
		}
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n  - " + strings.Join(errs, "\n  - "))
	}

	return nil
}

// getOrDefault returns value, or defaultValue when value is empty.
func getOrDefault(value, defaultValue string) string {
	if value != "" {
		return value
	}
	return defaultValue
}

// splitList splits a ';' separated list, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ";") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
