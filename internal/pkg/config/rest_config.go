package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// RestConfig aggregates every settings group needed by the REST API process.
type RestConfig struct {
	Server    ServerSettings    `mapstructure:"server"`
	Database  DatabaseSettings  `mapstructure:"database"`
	Logger    LoggerSettings    `mapstructure:"logger"`
	RateLimit RateLimitSettings `mapstructure:"rate_limit"`
	Auth      AuthSettings      `mapstructure:"auth"`
}

// envBindings maps configuration keys to the environment variables that override them.
var envBindings = map[string][]string{
	"server.port":                {"PORT"},
	"server.environment":         {"NODE_ENV", "APP_ENV"},
	"server.frontend_url":        {"FRONTEND_URL"},
	"server.uploads_dir":         {"UPLOADS_DIR"},
	"server.body_limit_bytes":    {"BODY_LIMIT_BYTES"},
	"server.trusted_proxies":     {"TRUSTED_PROXIES"},
	"database.type":              {"DB_TYPE"},
	"database.dsn":               {"DB_DSN"},
	"database.name":              {"DB_NAME"},
	"logger.log_level":           {"LOG_LEVEL"},
	"logger.log_type":            {"LOG_TYPE"},
	"logger.file_path":           {"LOG_FILE_PATH"},
	"logger.max_size":            {"LOG_MAX_SIZE"},
	"logger.max_backups":         {"LOG_MAX_BACKUPS"},
	"logger.max_age":             {"LOG_MAX_AGE"},
	"rate_limit.window_ms":       {"RATE_LIMIT_WINDOW_MS"},
	"rate_limit.max_requests":    {"RATE_LIMIT_MAX_REQUESTS"},
	"rate_limit.redis_url":       {"REDIS_URL"},
	"auth.jwt_secret":            {"JWT_SECRET"},
	"auth.token_ttl":             {"JWT_TTL"},
	"auth.stripe_webhook_secret": {"STRIPE_WEBHOOK_SECRET"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "3001")
	v.SetDefault("server.environment", EnvDevelopment)
	v.SetDefault("server.frontend_url", "")
	v.SetDefault("server.uploads_dir", "uploads")
	v.SetDefault("server.body_limit_bytes", 10<<20)
	v.SetDefault("server.trusted_proxies", []string{})
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "bella.db")
	v.SetDefault("database.name", "")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("rate_limit.window_ms", 15*60*1000)
	v.SetDefault("rate_limit.max_requests", 1000)
	v.SetDefault("rate_limit.redis_url", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", "168h")
	v.SetDefault("auth.stripe_webhook_secret", "")
}

// InitializeRestConfig loads the REST API configuration. A .env file in the working
// directory is applied to the environment first; the YAML file at configPath is
// optional. Environment variables take precedence over file values.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	for key, envs := range envBindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
			}
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// DATABASE_URL is the conventional single connection string for hosted postgres.
	if url := strings.TrimSpace(os.Getenv("DATABASE_URL")); url != "" {
		cfg.Database.Type = PostgresDbType
		cfg.Database.DSN = url
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every settings group.
func (c *RestConfig) Validate() error {
	validators := []interface{ Validate() error }{
		&c.Server, &c.Database, &c.Logger, &c.RateLimit, &c.Auth,
	}
	for _, s := range validators {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}
