package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

const maxIconSize = 128

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateSchema(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateLocale(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateSchema(config *Config) []string {
	var validationErrors []string
	if config.Schema.TimeoutSeconds <= 0 {
		validationErrors = append(validationErrors, "schema.timeout_seconds must be positive")
	}
	if config.Schema.File != "" {
		return validationErrors
	}
	if config.Schema.Endpoint == "" {
		return append(validationErrors, "schema.endpoint cannot be empty when schema.file is not set")
	}
	u, err := url.Parse(config.Schema.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		validationErrors = append(validationErrors, fmt.Sprintf("schema.endpoint must be an absolute http(s) URL (got: %s)", config.Schema.Endpoint))
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	if _, err := zerolog.ParseLevel(config.Logging.Level); err != nil || config.Logging.Level == "" {
		return []string{fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level)}
	}
	return nil
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	if config.Appearance.IconSize < 1 || config.Appearance.IconSize > maxIconSize {
		validationErrors = append(validationErrors, fmt.Sprintf("appearance.icon_size must be between 1 and %d", maxIconSize))
	}
	if config.Appearance.ActiveTint == "" {
		validationErrors = append(validationErrors, "appearance.active_tint cannot be empty")
	}
	if config.Appearance.InactiveTint == "" {
		validationErrors = append(validationErrors, "appearance.inactive_tint cannot be empty")
	}
	for name, value := range config.Appearance.Palette {
		if !strings.HasPrefix(value, "#") {
			validationErrors = append(validationErrors, fmt.Sprintf("appearance.palette.%s must be a hex color (got: %s)", name, value))
		}
	}
	return validationErrors
}

func validateLocale(config *Config) []string {
	if config.Locale == "" {
		return nil
	}
	if _, err := language.Parse(config.Locale); err != nil {
		return []string{fmt.Sprintf("locale must be a BCP 47 language tag (got: %s)", config.Locale)}
	}
	return nil
}
