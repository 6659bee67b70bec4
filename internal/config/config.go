package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name    string `envconfig:"APP_NAME" default:"sp-back"`
		Port    int    `envconfig:"PORT" default:"8080"`
		BaseURL string `envconfig:"APP_URL" default:"http://localhost:8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"spback"`
	}

	Files struct {
		Dir string `envconfig:"FILES_DIR" default:"files"`
	}

	Gemini struct {
		APIKey  string        `envconfig:"GEMINI_API_KEY"`
		Model   string        `envconfig:"GEMINI_MODEL" default:"gemini-1.5-pro"`
		Timeout time.Duration `envconfig:"GEMINI_TIMEOUT" default:"30s"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
