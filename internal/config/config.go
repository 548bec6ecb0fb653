package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs from the environment.
type Config struct {
	Addr string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// SessionSecret signs the session cookie. It has no default on
	// purpose: a hard-coded secret must never ship.
	SessionSecret string
}

// Load reads configuration from the environment, after loading a .env
// file if one is present next to the binary.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:       getEnv("APP_ADDR", ":8080"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "classhub"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		SessionSecret: os.Getenv("SESSION_SECRET"),
	}

	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET must be set")
	}

	return cfg, nil
}

// DSN builds the lib/pq connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
