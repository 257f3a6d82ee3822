package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	created   string
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// TABSHELL_SCHEMA_ENDPOINT, TABSHELL_NAVIGATION_REUSE_ACTIVE_ROUTE, ...
	v.SetEnvPrefix("TABSHELL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Same variables logging.NewFromEnv reads before the config exists.
	if err := v.BindEnv("logging.level", "TABSHELL_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind TABSHELL_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "TABSHELL_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind TABSHELL_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created from the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := m.viper.ConfigFileUsed()
			if configFile == "" {
				configFile, _ = GetConfigFile()
			}
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
		}

		if createErr := m.createDefaultConfig(); createErr != nil {
			configDir, _ := GetConfigDir()
			return fmt.Errorf("failed to create default config at %s: %w", configDir, createErr)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
		}
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch strings.ToLower(config.Logging.Format) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = "console"
	}

	config.Schema.Endpoint = strings.TrimSpace(config.Schema.Endpoint)
	config.Schema.File = strings.TrimSpace(config.Schema.File)
	config.Locale = strings.TrimSpace(config.Locale)

	if config.Appearance.IconSize == 0 {
		config.Appearance.IconSize = defaultIconSize
	}
	palette := make(map[string]string, len(config.Appearance.Palette))
	for name, value := range config.Appearance.Palette {
		palette[strings.ToLower(name)] = value
	}
	config.Appearance.Palette = palette
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// CreatedFile returns the path of the default config written by Load, if any.
func (m *Manager) CreatedFile() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.created
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	m.created = configFile
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setSchemaDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.setAppearanceDefaults(defaults)
	m.viper.SetDefault("navigation.reuse_active_route", defaults.Navigation.ReuseActiveRoute)
	m.viper.SetDefault("locale", defaults.Locale)
}

func (m *Manager) setSchemaDefaults(defaults *Config) {
	m.viper.SetDefault("schema.endpoint", defaults.Schema.Endpoint)
	m.viper.SetDefault("schema.file", defaults.Schema.File)
	m.viper.SetDefault("schema.timeout_seconds", defaults.Schema.TimeoutSeconds)
	m.viper.SetDefault("schema.user_agent", defaults.Schema.UserAgent)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.active_tint", defaults.Appearance.ActiveTint)
	m.viper.SetDefault("appearance.inactive_tint", defaults.Appearance.InactiveTint)
	m.viper.SetDefault("appearance.item_color", defaults.Appearance.ItemColor)
	m.viper.SetDefault("appearance.indicator_color", defaults.Appearance.IndicatorColor)
	m.viper.SetDefault("appearance.icon_size", defaults.Appearance.IconSize)
	m.viper.SetDefault("appearance.palette", defaults.Appearance.Palette)
}
