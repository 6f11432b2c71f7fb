package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config - параметры приложения, читаются из переменных окружения.
type Config struct {
	DBHost        string `env:"DB_HOST" envDefault:"localhost"`
	DBPort        string `env:"DB_PORT" envDefault:"5432"`
	DBUser        string `env:"DB_USER"`
	DBPass        string `env:"DB_PASS"`
	DBName        string `env:"DB_NAME"`
	APIPort       string `env:"API_PORT" envDefault:"8080"`
	SessionSecret string `env:"SESSION_SECRET" envDefault:"travelrek-dev-secret"`
}

// Load читает конфигурацию из окружения.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("не удалось прочитать конфигурацию: %w", err)
	}
	return &cfg, nil
}

// DSN собирает строку подключения к PostgreSQL.
func (c *Config) DSN() string {
	return "host=" + c.DBHost + " port=" + c.DBPort + " user=" + c.DBUser +
		" password=" + c.DBPass + " dbname=" + c.DBName + " sslmode=disable"
}
