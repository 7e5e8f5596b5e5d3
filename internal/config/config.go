package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	GeminiAPIKey    string `mapstructure:"gemini_api_key"`
	Model           string `mapstructure:"model"`
	BaseURL         string `mapstructure:"base_url"`
	TimeoutSeconds  int    `mapstructure:"timeout_seconds"`
	MaxOutputTokens int    `mapstructure:"max_output_tokens"`
	Grounding       bool   `mapstructure:"grounding"` // Google Search grounding for web citations
	Debug           bool   `mapstructure:"debug"`     // debug-level file logging
}

// Initialize loads or creates the configuration file and returns the parsed
// config. The GEMINI_API_KEY environment variable overrides the file value.
func Initialize() (*Config, error) {
	configDir, err := Dir()
	if err != nil {
		return nil, err
	}
	configFile := filepath.Join(configDir, "config.yaml")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := createDefaultConfig(configFile); err != nil {
			return nil, err
		}
	}

	viper.SetConfigFile(configFile)
	viper.SetConfigType("yaml")

	viper.SetDefault("gemini_api_key", "")
	viper.SetDefault("model", "gemini-2.5-pro")
	viper.SetDefault("base_url", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("timeout_seconds", 600)
	viper.SetDefault("max_output_tokens", 65536)
	viper.SetDefault("grounding", true)
	viper.SetDefault("debug", false)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.GeminiAPIKey = key
	}

	return cfg, nil
}

// createDefaultConfig creates a default config file.
func createDefaultConfig(path string) error {
	defaultConfig := `# bridgeout configuration
model: gemini-2.5-pro
base_url: https://generativelanguage.googleapis.com/v1beta
timeout_seconds: 600
max_output_tokens: 65536

# Google Search grounding adds web citations to generated plans.
grounding: true

# API key (keep this file secure!). GEMINI_API_KEY env var takes precedence.
gemini_api_key: ""

debug: false
`
	return os.WriteFile(path, []byte(defaultConfig), 0600)
}

// Set updates a configuration value.
func Set(key, value string) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}

// Get retrieves a configuration value.
func Get(key string) string {
	return viper.GetString(key)
}

// Dir returns the state directory (~/.bridgeout) holding the config file,
// the database, and logs.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".bridgeout"), nil
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() string {
	dir, _ := Dir()
	return filepath.Join(dir, "config.yaml")
}
