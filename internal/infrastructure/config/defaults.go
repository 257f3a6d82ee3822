package config

const (
	defaultEndpoint       = "https://portosprivados.org.br/api.php"
	defaultTimeoutSeconds = 15
	defaultIconSize       = 24
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values for tabshell.
func DefaultConfig() *Config {
	return &Config{
		Schema: SchemaConfig{
			Endpoint:       defaultEndpoint,
			TimeoutSeconds: defaultTimeoutSeconds,
			UserAgent:      "tabshell",
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: true,
			LogDir:        getDefaultLogDir(),
		},
		Appearance: AppearanceConfig{
			ActiveTint:     "tomato",
			InactiveTint:   "gray",
			ItemColor:      "black",
			IndicatorColor: "black",
			IconSize:       defaultIconSize,
			Palette:        map[string]string{},
		},
		Navigation: NavigationConfig{
			ReuseActiveRoute: false,
		},
	}
}
