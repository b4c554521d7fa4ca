package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	DatabaseFile       string     `mapstructure:"database_file" validate:"required"`
	OverridesDirectory string     `mapstructure:"overrides_directory" validate:"required"`
	ExportsDirectory   string     `mapstructure:"exports_directory" validate:"required"`
	Sync               SyncConfig `mapstructure:"sync"`
}

type SyncConfig struct {
	ManifestURL string `mapstructure:"manifest_url" validate:"omitempty,url"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/ghareeb")
	}

	v.SetDefault("database_file", filepath.Join("data", "ghareeb.db"))
	v.SetDefault("overrides_directory", filepath.Join("data", "overrides"))
	v.SetDefault("exports_directory", "exports")

	// The manifest URL comes from the environment only, never the file, so
	// a shared config can point different installs at different channels.
	if err := v.BindEnv("sync.manifest_url", "GHAREEB_MANIFEST_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind GHAREEB_MANIFEST_URL environment variable: %w", err)
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

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cfg.Validate() > %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration and returns a human-readable error
// listing every failing field.
func (c *Config) Validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return fmt.Errorf("newValidator() > %w", err)
	}

	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("validate.Struct() > %w", err)
		}
		messages := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			messages = append(messages, fieldError.Translate(trans))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
	}
	return nil
}
