package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Interpreter specifics
	Interpreter InterpreterConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	AllowedOrigins  []string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type InterpreterConfig struct {
	DefaultTimezone string
	HorizonMonths   int
	RollingMonths   int
	CacheSize       int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Split allowed origins since viper might not parse array seamlessly from env
	var origins []string
	if raw := viper.GetString("http_server.allowed_origins"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				origins = append(origins, o)
			}
		}
	}
	cfg.HTTPServer.AllowedOrigins = origins

	// Interpreter specifics
	cfg.Interpreter.DefaultTimezone = viper.GetString("interpreter.default_timezone")
	cfg.Interpreter.HorizonMonths = viper.GetInt("interpreter.horizon_months")
	cfg.Interpreter.RollingMonths = viper.GetInt("interpreter.rolling_months")
	cfg.Interpreter.CacheSize = viper.GetInt("interpreter.cache_size")

	if cfg.Interpreter.HorizonMonths <= 0 {
		return nil, fmt.Errorf("interpreter.horizon_months must be positive, got %d", cfg.Interpreter.HorizonMonths)
	}
	if cfg.Interpreter.RollingMonths <= 0 {
		return nil, fmt.Errorf("interpreter.rolling_months must be positive, got %d", cfg.Interpreter.RollingMonths)
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8789)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.allowed_origins", "http://localhost:3000,http://localhost:8789")
	viper.SetDefault("http_server.rate_limit_per_min", 120)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("interpreter.default_timezone", "UTC")
	viper.SetDefault("interpreter.horizon_months", 6)
	viper.SetDefault("interpreter.rolling_months", 6)
	viper.SetDefault("interpreter.cache_size", 512)
}
