// Package config loads and validates the application configuration.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Account    AccountConfig    `mapstructure:"account"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Remote     RemoteConfig     `mapstructure:"remote"`
	Session    SessionConfig    `mapstructure:"session"`
	Review     ReviewConfig     `mapstructure:"review"`
	Extraction ExtractionConfig `mapstructure:"extraction"`
	Templates  TemplatesConfig  `mapstructure:"templates"`
}

type AccountConfig struct {
	// UserID identifies the local user for device-only storage and is the
	// write-payload owner for cloud rows.
	UserID  string `mapstructure:"user_id" validate:"required"`
	BaseURL string `mapstructure:"base_url"`
	Token   string `mapstructure:"token"`
}

type StorageConfig struct {
	SQLitePath string `mapstructure:"sqlite_path" validate:"required"`
}

type RemoteConfig struct {
	// DatabaseURL is the multi-tenant Postgres service DSN, bound to the
	// environment only, never read from the config file.
	DatabaseURL     string `mapstructure:"database_url"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime_seconds"`
}

type SessionConfig struct {
	Directory string `mapstructure:"directory" validate:"required"`
	// FreshnessWindow bounds how old a saved session record may be before
	// it is discarded on resume.
	FreshnessWindow time.Duration `mapstructure:"freshness_window"`
	// RefreshInterval is how often an active synced-tier session merges
	// newly arrived words.
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
}

type ReviewConfig struct {
	LedgerPath string `mapstructure:"ledger_path" validate:"required"`
}

type ExtractionConfig struct {
	APIKey           string `mapstructure:"api_key"`
	Model            string `mapstructure:"model"`
	MaxRetryAttempts uint   `mapstructure:"max_retry_attempts"`
}

type TemplatesConfig struct {
	DeckExportTemplate string `mapstructure:"deck_export_template" validate:"omitempty,file"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/scanvocab")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("account.user_id", "local")
	v.SetDefault("account.base_url", "https://api.scanvocab.app")
	v.SetDefault("storage.sqlite_path", filepath.Join("data", "scanvocab.db"))
	v.SetDefault("remote.max_open_conns", 5)
	v.SetDefault("remote.max_idle_conns", 2)
	v.SetDefault("remote.conn_max_lifetime_seconds", 300)
	v.SetDefault("session.directory", filepath.Join("data", "sessions"))
	v.SetDefault("session.freshness_window", "24h")
	v.SetDefault("session.refresh_interval", "30s")
	v.SetDefault("review.ledger_path", filepath.Join("data", "wrong_answers.yml"))
	v.SetDefault("extraction.model", "gpt-4o-mini")
	v.SetDefault("extraction.max_retry_attempts", 3)
	// Template is optional - if not specified, the embedded fallback is used
	v.SetDefault("templates.deck_export_template", "")

	// Secrets come from the environment only, never from the config file
	if err := v.BindEnv("remote.database_url", "SUPABASE_DB_URL", "SCANVOCAB_DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind SUPABASE_DB_URL environment variable: %w", err)
	}
	if err := v.BindEnv("account.token", "SCANVOCAB_API_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind SCANVOCAB_API_TOKEN environment variable: %w", err)
	}
	if err := v.BindEnv("extraction.api_key", "OPENAI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("extraction.model", "OPENAI_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_MODEL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// Load is a convenience wrapper for NewConfigLoader + Load.
func Load(configFile string) (*Config, error) {
	loader, err := NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
