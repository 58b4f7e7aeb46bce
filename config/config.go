// Package config defines application settings.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/library-api/apidocs/apiversion"
)

// EnvPrefix is a prefix of environment variables.
const EnvPrefix = "LIBRARY_API"

// Config defines application settings.
type Config struct {
	HTTPPort int `envconfig:"HTTP_PORT" default:"8010"`

	APIVersions        []string `envconfig:"API_VERSIONS" default:"1.0"`
	DeprecatedVersions []string `envconfig:"DEPRECATED_VERSIONS"`
	// DeprecationNotice appends deprecation message to descriptions of deprecated versions.
	DeprecationNotice bool `envconfig:"DEPRECATION_NOTICE" default:"false"`

	APIPrefix string `envconfig:"API_PREFIX" default:"/api"`
	DocsPath  string `envconfig:"DOCS_PATH" default:"/docs"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads config from environment.
func Load() (Config, error) {
	cfg := Config{}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

// Versions parses supported and deprecated API versions.
func (c Config) Versions() (supported, deprecated []apiversion.Version, err error) {
	supported, err = apiversion.ParseVersions(c.APIVersions)
	if err != nil {
		return nil, nil, fmt.Errorf("API_VERSIONS: %w", err)
	}

	deprecated, err = apiversion.ParseVersions(c.DeprecatedVersions)
	if err != nil {
		return nil, nil, fmt.Errorf("DEPRECATED_VERSIONS: %w", err)
	}

	return supported, deprecated, nil
}

// Provider creates API version provider of configured versions.
func (c Config) Provider() (*apiversion.Provider, error) {
	supported, deprecated, err := c.Versions()
	if err != nil {
		return nil, err
	}

	return apiversion.NewProvider(supported, apiversion.WithDeprecated(deprecated...)), nil
}
