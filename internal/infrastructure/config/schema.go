package config

import "time"

// Config represents the complete configuration for tabshell.
type Config struct {
	// Schema controls where the navigation document comes from.
	Schema     SchemaConfig     `mapstructure:"schema" toml:"schema" json:"schema"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
	Navigation NavigationConfig `mapstructure:"navigation" toml:"navigation" json:"navigation"`
	// Locale selects the interface language (e.g. "en", "pt-BR"). Empty follows $LANG.
	Locale string `mapstructure:"locale" toml:"locale" json:"locale"`
}

// SchemaConfig holds the navigation document source.
type SchemaConfig struct {
	// Endpoint is fetched once per launch with a GET request.
	Endpoint string `mapstructure:"endpoint" toml:"endpoint" json:"endpoint"`
	// File, when set, replaces Endpoint with a local JSON or YAML document.
	File           string `mapstructure:"file" toml:"file" json:"file"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" toml:"timeout_seconds" json:"timeout_seconds"`
	UserAgent      string `mapstructure:"user_agent" toml:"user_agent" json:"user_agent"`
}

// Timeout returns TimeoutSeconds as a duration.
func (s SchemaConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level"`
	Format string `mapstructure:"format" toml:"format" json:"format"`
	// The shell owns the terminal, so logs only go to a file.
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
}

// AppearanceConfig holds terminal rendering preferences.
type AppearanceConfig struct {
	ActiveTint   string `mapstructure:"active_tint" toml:"active_tint" json:"active_tint"`
	InactiveTint string `mapstructure:"inactive_tint" toml:"inactive_tint" json:"inactive_tint"`
	// ItemColor is the glyph color of list items.
	ItemColor string `mapstructure:"item_color" toml:"item_color" json:"item_color"`
	// IndicatorColor is used for the list chevron when a screen has no icon color.
	IndicatorColor string `mapstructure:"indicator_color" toml:"indicator_color" json:"indicator_color"`
	// IconSize is passed to icon providers; terminals render every glyph as one cell.
	IconSize int `mapstructure:"icon_size" toml:"icon_size" json:"icon_size"`
	// Palette maps color names found in the navigation document to hex values.
	Palette map[string]string `mapstructure:"palette" toml:"palette" json:"palette"`
}

// NavigationConfig holds navigation behavior.
type NavigationConfig struct {
	// ReuseActiveRoute updates the top screen in place when navigating to the
	// route it already shows, instead of pushing a new one.
	ReuseActiveRoute bool `mapstructure:"reuse_active_route" toml:"reuse_active_route" json:"reuse_active_route"`
}
