// Package config builds logger options from a file, .env files and the
// environment.
//
// Sources are applied in this order, later ones winning:
//
//  1. the config file (YAML for .yml/.yaml, JSON5 otherwise)
//  2. LOGIFY_* environment variables, after loading .env files
//  3. defaults for every key still unset
//
// .env files are loaded without overriding variables that are already
// set: ENV_FILE alone when it is set, otherwise .env.local and then .env
// from the working directory.
//
// Example config.yml:
//
//	level: debug
//	context: Orders
//	contextPrefix: api
//	withTime: false
//	logDirName: logs
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/titanous/json5"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/logify/core"
	"github.com/philipp01105/logify/logger"
)

// Config mirrors the logger options as they appear in files and the
// environment. Nil booleans and empty strings are unset.
type Config struct {
	Level         string `yaml:"level" json:"level" env:"LOGIFY_LEVEL"`
	Context       string `yaml:"context" json:"context" env:"LOGIFY_CONTEXT"`
	ContextPrefix string `yaml:"contextPrefix" json:"contextPrefix" env:"LOGIFY_CONTEXT_PREFIX"`
	WithTime      *bool  `yaml:"withTime" json:"withTime" env:"LOGIFY_WITH_TIME"`
	LogDirName    string `yaml:"logDirName" json:"logDirName" env:"LOGIFY_LOG_DIR_NAME"`
	ShowLevel     *bool  `yaml:"showLevel" json:"showLevel" env:"LOGIFY_SHOW_LEVEL"`
	ShowContext   *bool  `yaml:"showContext" json:"showContext" env:"LOGIFY_SHOW_CONTEXT"`
}

// ValidationError reports a configuration value that cannot be used
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// loadEnvFiles loads .env files in priority order:
// 1. ENV_FILE environment variable (if set, loads only this file)
// 2. .env.local (if exists, wins over .env)
// 3. .env (default)
// Missing files are ignored.
func loadEnvFiles() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	if err := godotenv.Load(".env.local"); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env.local: %w", err)
	}

	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	return nil
}

// Load reads the config file at path and applies environment overrides
func Load(path string) (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, fmt.Errorf("load environment files: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	if err := decode(path, data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FromEnv builds a Config from .env files and the environment only
func FromEnv() (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, fmt.Errorf("load environment files: %w", err)
	}

	var cfg Config
	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yaml.Unmarshal(data, cfg)
	default:
		return json5.Unmarshal(data, cfg)
	}
}

// applyEnvOverrides sets every field whose env tag names a non-empty
// variable. All malformed values are reported together.
func applyEnvOverrides(cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	var errs error
	for i := 0; i < v.NumField(); i++ {
		name := t.Field(i).Tag.Get("env")
		if name == "" {
			continue
		}
		val := os.Getenv(name)
		if val == "" {
			continue
		}
		if err := setFieldFromString(v.Field(i), val); err != nil {
			errs = multierr.Append(errs, &ValidationError{Field: name, Message: err.Error()})
		}
	}
	return errs
}

func setFieldFromString(field reflect.Value, val string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(val)
	case reflect.Pointer:
		if field.Type().Elem().Kind() != reflect.Bool {
			return fmt.Errorf("unsupported type %s", field.Type())
		}
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		if err != nil {
			return fmt.Errorf("invalid boolean %q", val)
		}
		field.Set(reflect.ValueOf(&b))
	default:
		return fmt.Errorf("unsupported type %s", field.Type())
	}
	return nil
}

// Options converts the config to logger options, with defaults for
// every unset key.
func (c *Config) Options() (logger.Options, error) {
	opts := logger.DefaultOptions()

	if c.Level != "" {
		level, err := core.ParseLevel(c.Level)
		if err != nil {
			return opts, &ValidationError{Field: "level", Message: "must be one of: debug, info, warn, error"}
		}
		opts.Level = level
	}

	opts.Context = c.Context
	opts.ContextPrefix = c.ContextPrefix
	if c.LogDirName != "" {
		opts.LogDirName = c.LogDirName
	}
	if c.WithTime != nil {
		opts.ShowTime = *c.WithTime
	}
	if c.ShowLevel != nil {
		opts.ShowLevel = *c.ShowLevel
	}
	if c.ShowContext != nil {
		opts.ShowContext = *c.ShowContext
	}

	return opts, nil
}

// Builder returns a logger builder preset with the config's options
func (c *Config) Builder() (*logger.Builder, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return logger.NewBuilder().WithOptions(opts), nil
}

// IsValidation reports whether err contains a *ValidationError
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
