package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv      string   `env:"APP_ENV" envDefault:"development"`
	Port        string   `env:"PORT" envDefault:"8080"`
	DatabaseURL string   `env:"DATABASE_URL"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173"`

	Telegram TelegramConfig `envPrefix:"TELEGRAM_"`
	R2       R2Config       `envPrefix:"R2_"`
}

// TelegramConfig points at the staff chat that receives new reservation
// requests.
type TelegramConfig struct {
	Token  string `env:"TOKEN"`
	ChatID int64  `env:"CHAT_ID"`
}

func (t TelegramConfig) Enabled() bool {
	return t.Token != "" && t.ChatID != 0
}

// R2Config describes the S3-compatible bucket submissions are archived to.
type R2Config struct {
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET_NAME"`
}

func (r R2Config) Enabled() bool {
	return r.Endpoint != "" && r.AccessKey != "" && r.SecretKey != "" && r.Bucket != ""
}

// Load reads .env (outside production) and then the process environment.
func Load() (*Config, error) {
	if !isProduction(os.Getenv("APP_ENV")) {
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return isProduction(c.AppEnv)
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func isProduction(appEnv string) bool {
	return appEnv == "production"
}
