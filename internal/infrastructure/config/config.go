package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs access tokens. The process refuses to start without it.
	JWTSecret string `env:"JWT_SECRET, required"`

	// AdminAPIKey guards the administrative unlock endpoint. Empty disables it.
	AdminAPIKey string `env:"ADMIN_API_KEY"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Mailgun MailgunConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=qfnexora"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MailgunConfig struct {
	APIKey string `env:"MAILGUN_API_KEY"`
	Domain string `env:"MAILGUN_DOMAIN"`
	Sender string `env:"MAIL_SENDER, default=no-reply@qfnexora.app"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
