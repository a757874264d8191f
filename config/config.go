package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all client configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	Logger LoggerConfig

	// Gemini - LLM
	Gemini GeminiConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// GeminiConfig is the configuration for Google Gemini. Same shape as pkg/gemini.Config.
type GeminiConfig struct {
	APIKey            string
	Model             string
	SystemInstruction string
	MaxOutputTokens   int
	Temperature       float64
	ProxyURL          string
	StrictHistory     bool
	Timeout           int // in seconds, 0 disables
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	FilePath     string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	viper.SetConfigName("gemini-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/gemini/")

	// GEMINI_API_KEY overrides gemini.api_key, etc.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Config file is optional; env vars alone are enough.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")

	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Logger.FilePath = viper.GetString("logger.file_path")

	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.SystemInstruction = viper.GetString("gemini.system_instruction")
	cfg.Gemini.MaxOutputTokens = viper.GetInt("gemini.max_output_tokens")
	cfg.Gemini.Temperature = viper.GetFloat64("gemini.temperature")
	cfg.Gemini.ProxyURL = viper.GetString("gemini.proxy_url")
	cfg.Gemini.StrictHistory = viper.GetBool("gemini.strict_history")
	cfg.Gemini.Timeout = viper.GetInt("gemini.timeout")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "production")

	// Logger
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("logger.file_path", "gemini.log")

	// Gemini
	viper.SetDefault("gemini.model", "gemini-1.5-flash")
	viper.SetDefault("gemini.system_instruction", "You are an assistant")
	viper.SetDefault("gemini.max_output_tokens", 8192)
	viper.SetDefault("gemini.temperature", 1.0)
	viper.SetDefault("gemini.strict_history", false)
	viper.SetDefault("gemini.timeout", 0)
}

func validate(cfg *Config) error {
	if cfg.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required")
	}
	if cfg.Gemini.Model == "" {
		return fmt.Errorf("gemini.model is required")
	}
	if cfg.Gemini.MaxOutputTokens < 0 {
		return fmt.Errorf("gemini.max_output_tokens must not be negative")
	}
	if cfg.Gemini.Timeout < 0 {
		return fmt.Errorf("gemini.timeout must not be negative")
	}
	return nil
}
