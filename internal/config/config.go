// Package config loads application configuration from a YAML file,
// environment variables, and an optional .env file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App        App        `mapstructure:"app"`
	AI         AI         `mapstructure:"ai"`
	Generation Generation `mapstructure:"generation"`
	Server     Server     `mapstructure:"server"`
	Database   Database   `mapstructure:"database"`
}

// App holds general application configuration.
type App struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
}

// AI holds per-provider LLM configuration. A missing key disables that
// provider at call time; the others remain usable.
type AI struct {
	Claude ProviderConfig `mapstructure:"claude"`
	OpenAI ProviderConfig `mapstructure:"openai"`
	Gemini ProviderConfig `mapstructure:"gemini"`
}

// ProviderConfig holds one vendor's credentials and model overrides. Token
// ceilings are independently tunable since each vendor enforces different
// limits.
type ProviderConfig struct {
	APIKey    string `mapstructure:"api_key"`
	Model     string `mapstructure:"model"`
	MaxTokens int    `mapstructure:"max_tokens"`
	BaseURL   string `mapstructure:"base_url"`
}

// Generation holds orchestrator tuning.
type Generation struct {
	CallDelay     time.Duration `mapstructure:"call_delay"`
	NumberOfIdeas int           `mapstructure:"number_of_ideas"`
}

// Server holds HTTP server configuration.
type Server struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	CORSOrigins  []string      `mapstructure:"cors_origins"`
}

// Database holds Postgres connection configuration.
type Database struct {
	URL string `mapstructure:"url"`
}

var globalConfig *Config

// Load reads configuration from the given file (or .adforge.yaml by default),
// the environment, and an optional .env file. Subsequent calls return the
// cached configuration.
func Load(configFile string) (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	// Load .env file if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Printf("Warning: Error loading .env file: %v\n", err)
		}
	}

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(".adforge")
		viper.SetConfigType("yaml")
	}

	setDefaults()
	bindEnvironmentVariables()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	globalConfig = config
	return config, nil
}

// Get returns the global configuration, loading it if necessary.
func Get() *Config {
	if globalConfig == nil {
		cfg, err := Load("")
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
		return cfg
	}
	return globalConfig
}

// Reset clears the cached configuration. Intended for tests.
func Reset() {
	globalConfig = nil
	viper.Reset()
}

func setDefaults() {
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.log_level", "info")

	viper.SetDefault("ai.claude.model", "claude-sonnet-4-20250514")
	viper.SetDefault("ai.claude.max_tokens", 4096)
	viper.SetDefault("ai.openai.model", "gpt-4o")
	viper.SetDefault("ai.openai.max_tokens", 4096)
	viper.SetDefault("ai.gemini.model", "gemini-1.5-flash")
	viper.SetDefault("ai.gemini.max_tokens", 8192)

	viper.SetDefault("generation.call_delay", "1s")
	viper.SetDefault("generation.number_of_ideas", 10)

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "120s")
	viper.SetDefault("server.cors_origins", []string{"*"})
}

func bindEnvironmentVariables() {
	// Vendor keys keep their conventional environment names.
	_ = viper.BindEnv("ai.claude.api_key", "ANTHROPIC_API_KEY")
	_ = viper.BindEnv("ai.openai.api_key", "OPENAI_API_KEY")
	_ = viper.BindEnv("ai.gemini.api_key", "GEMINI_API_KEY")
	_ = viper.BindEnv("database.url", "DATABASE_URL")
	_ = viper.BindEnv("server.port", "PORT")
}

func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}
	if config.Generation.CallDelay < 0 {
		return fmt.Errorf("generation call_delay must not be negative")
	}
	return nil
}
