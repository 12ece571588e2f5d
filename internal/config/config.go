package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Groq   ModelConfig  `mapstructure:"groq"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// ModelConfig describes the completion endpoint and its sampling knobs.
type ModelConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url"`
	Model       string  `mapstructure:"model"`
	Temperature float32 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	TopP        float32 `mapstructure:"top_p"`
}

// LoadConfig reads config.yaml from the working directory. Any value can be
// overridden with a CARMITRA_-prefixed env var, e.g. CARMITRA_GROQ_API_KEY.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("CARMITRA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.port", ":8080")
	viper.SetDefault("groq.base_url", "https://api.groq.com/openai/v1")
	viper.SetDefault("groq.model", "llama-3.3-70b-versatile")
	viper.SetDefault("groq.temperature", 0.7)
	viper.SetDefault("groq.max_tokens", 1024)
	viper.SetDefault("groq.top_p", 1)

	if err := viper.ReadInConfig(); err != nil {
		// Missing file is fine: defaults plus env vars cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
