// Package config загружает конфигурацию сервера из переменных окружения.
package config

import (
	"fmt"
	"os"
	"time"
)

// Environment variable names
const (
	EnvAddress      = "THALCARE_ADDRESS"
	EnvDatabasePath = "THALCARE_DATABASE_PATH"
	EnvJWTSecret    = "THALCARE_JWT_SECRET"
)

// DefaultAddress адрес по умолчанию, если THALCARE_ADDRESS не задан
const DefaultAddress = ":3000"

// TokenTTL срок действия session token
const TokenTTL = 30 * 24 * time.Hour

// Config содержит конфигурацию сервера
type Config struct {
	Address      string        // адрес HTTP сервера (host:port)
	DatabasePath string        // путь к файлу SQLite базы
	JWTSecret    string        // секрет для подписи session tokens
	TokenTTL     time.Duration // срок действия session token
}

// Load читает конфигурацию из переменных окружения.
// Отсутствие секрета или пути к базе — ошибка: сервер не должен
// стартовать без них, это проверяется до открытия сокета.
func Load() (*Config, error) {
	cfg := &Config{
		Address:      os.Getenv(EnvAddress),
		DatabasePath: os.Getenv(EnvDatabasePath),
		JWTSecret:    os.Getenv(EnvJWTSecret),
		TokenTTL:     TokenTTL,
	}

	if cfg.Address == "" {
		cfg.Address = DefaultAddress
	}

	if cfg.DatabasePath == "" {
		return nil, fmt.Errorf("%s is not set", EnvDatabasePath)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("%s is not set", EnvJWTSecret)
	}

	return cfg, nil
}
