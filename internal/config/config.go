// Package config loads application settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix scopes all environment variables, e.g. APP_MONGODB_URL.
const envPrefix = "APP"

// Config is the application configuration, constructed once at process
// start and passed by handle into the components that need it.
type Config struct {
	// MongoDB
	MongoDBURL   string `mapstructure:"mongodb_url"`
	DatabaseName string `mapstructure:"database_name"`

	// Service metadata
	AppName        string `mapstructure:"app_name"`
	AppDescription string `mapstructure:"app_description"`
	AppVersion     string `mapstructure:"app_version"`
	Debug          bool   `mapstructure:"debug"`

	// HTTP
	ServerPort string `mapstructure:"server_port"`
	APIPrefix  string `mapstructure:"api_prefix"`

	// CORS
	AllowOrigins     []string `mapstructure:"allow_origins"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	AllowMethods     []string `mapstructure:"allow_methods"`
	AllowHeaders     []string `mapstructure:"allow_headers"`

	// Store timeouts
	ConnectTimeout   time.Duration `mapstructure:"connect_timeout"`
	OperationTimeout time.Duration `mapstructure:"operation_timeout"`
}

// Load reads configuration with precedence: environment > .env file > defaults.
func Load() (*Config, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mongodb_url", "mongodb://localhost:27017/scene_backend")
	v.SetDefault("database_name", "scene_backend")

	v.SetDefault("app_name", "Scene Management API")
	v.SetDefault("app_description", "User and scene management API backed by MongoDB")
	v.SetDefault("app_version", "1.0.0")
	v.SetDefault("debug", false)

	v.SetDefault("server_port", "8080")
	v.SetDefault("api_prefix", "/api")

	v.SetDefault("allow_origins", []string{"*"})
	v.SetDefault("allow_credentials", true)
	v.SetDefault("allow_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("allow_headers", []string{"*"})

	v.SetDefault("connect_timeout", 5*time.Second)
	v.SetDefault("operation_timeout", 5*time.Second)
}

// bindEnvVars binds environment variables explicitly so that Unmarshal
// sees values that were only provided through the environment.
func bindEnvVars(v *viper.Viper) {
	keys := []string{
		"mongodb_url",
		"database_name",
		"app_name",
		"app_description",
		"app_version",
		"debug",
		"server_port",
		"api_prefix",
		"allow_origins",
		"allow_credentials",
		"allow_methods",
		"allow_headers",
		"connect_timeout",
		"operation_timeout",
	}
	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

func validate(cfg *Config) error {
	if cfg.MongoDBURL == "" {
		return fmt.Errorf("mongodb_url is required")
	}
	if cfg.DatabaseName == "" {
		return fmt.Errorf("database_name is required")
	}
	if cfg.ServerPort == "" {
		return fmt.Errorf("server_port is required")
	}
	return nil
}
