package config

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	DB DBConfig

	// Addr is the listen address for the HTTP server.
	Addr string

	// StrictMealOwnership scopes meal updates to the owning user. When
	// false the update endpoint matches by meal id only, which lets any
	// authenticated session rewrite any meal (the legacy behavior).
	StrictMealOwnership bool
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func Load(log *zap.Logger) *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system env")
	}

	return &Config{
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost", log),
			Port:     getEnv("DB_PORT", "5432", log),
			User:     getEnv("DB_USER", "postgres", log),
			Password: getEnv("DB_PASSWORD", "", log),
			Name:     getEnv("DB_NAME", "daily_diet", log),
			SSLMode:  getEnv("DB_SSLMODE", "disable", log),
		},
		Addr:                getEnv("ADDR", ":8080", log),
		StrictMealOwnership: getEnv("STRICT_MEAL_OWNERSHIP", "true", log) != "false",
	}
}

func getEnv(key, fallback string, log *zap.Logger) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	log.Debug("env not set, using default", zap.String("key", key), zap.String("default", fallback))
	return fallback
}
