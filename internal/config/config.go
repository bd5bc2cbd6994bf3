// Package config loads the client configuration from YAML.
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

var (
	validDrivers    = []string{DriverMemory, DriverSQLite, DriverPostgres, DriverRedis}
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"json", "text"}
)

type Config struct {
	API     APIConfig     `yaml:"api"`
	Storage StorageConfig `yaml:"storage"`
	Store   StoreConfig   `yaml:"store"`
	Pricing PricingConfig `yaml:"pricing"`
	Log     LogConfig     `yaml:"log"`
}

type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	// Timeout of zero means no client-side timeout.
	Timeout time.Duration `yaml:"timeout"`
}

// StorageConfig selects where client state is persisted.
type StorageConfig struct {
	Driver    string `yaml:"driver"`
	Path      string `yaml:"path"`       // sqlite
	DSN       string `yaml:"dsn"`        // postgres
	Addr      string `yaml:"addr"`       // redis, host:port or redis:// URL
	KeyPrefix string `yaml:"key_prefix"` // redis
}

type StoreConfig struct {
	// WriteTimeout bounds each background write to storage.
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type PricingConfig struct {
	Currency string `yaml:"currency"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s' (value: %v): %s", e.Field, e.Value, e.Message)
}

func Default() Config {
	return Config{
		Storage: StorageConfig{
			Driver:    DriverMemory,
			KeyPrefix: "storefront:",
		},
		Store: StoreConfig{
			WriteTimeout: 5 * time.Second,
		},
		Pricing: PricingConfig{Currency: "GBP"},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads a YAML file, expands ${VAR} references from the environment,
// overlays it on Default and validates the result.
func Load(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("os.ReadFile: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return Config{}, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("cfg.Validate: %w", err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errs []string

	if c.API.BaseURL == "" {
		errs = append(errs, ValidationError{Field: "api.base_url", Message: "is required"}.Error())
	}
	if c.API.Timeout < 0 {
		errs = append(errs, ValidationError{Field: "api.timeout", Value: c.API.Timeout, Message: "must not be negative"}.Error())
	}

	if err := c.validateStorage(); err != nil {
		errs = append(errs, err.Error())
	}

	if c.Store.WriteTimeout <= 0 {
		errs = append(errs, ValidationError{Field: "store.write_timeout", Value: c.Store.WriteTimeout, Message: "must be positive"}.Error())
	}

	if _, err := c.Currency(); err != nil {
		errs = append(errs, err.Error())
	}

	if !slices.Contains(validLogLevels, c.Log.Level) {
		errs = append(errs, ValidationError{Field: "log.level", Value: c.Log.Level, Message: "must be one of: " + strings.Join(validLogLevels, ", ")}.Error())
	}
	if !slices.Contains(validLogFormats, c.Log.Format) {
		errs = append(errs, ValidationError{Field: "log.format", Value: c.Log.Format, Message: "must be one of: " + strings.Join(validLogFormats, ", ")}.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}

	return nil
}

func (c Config) validateStorage() error {
	s := c.Storage

	if !slices.Contains(validDrivers, s.Driver) {
		return ValidationError{Field: "storage.driver", Value: s.Driver, Message: "must be one of: " + strings.Join(validDrivers, ", ")}
	}

	switch {
	case s.Driver == DriverSQLite && s.Path == "":
		return ValidationError{Field: "storage.path", Message: "is required for sqlite"}
	case s.Driver == DriverPostgres && s.DSN == "":
		return ValidationError{Field: "storage.dsn", Message: "is required for postgres"}
	case s.Driver == DriverRedis && s.Addr == "":
		return ValidationError{Field: "storage.addr", Message: "is required for redis"}
	}

	return nil
}

// Currency parses the pricing currency as an ISO 4217 code.
func (c Config) Currency() (currency.Unit, error) {
	cur, err := currency.ParseISO(c.Pricing.Currency)
	if err != nil {
		return currency.Unit{}, ValidationError{Field: "pricing.currency", Value: c.Pricing.Currency, Message: err.Error()}
	}
	return cur, nil
}
