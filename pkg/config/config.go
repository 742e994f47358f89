package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Catalog  CatalogConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type CatalogConfig struct {
	File            string // empty means the embedded default catalog
	RelatedLimit    int
	RelatedMaxLimit int
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work too (Docker/K8s)
	for _, envFile := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(getEnvInt("SERVER_READ_TIMEOUT", 30)) * time.Second,
			WriteTimeout: time.Duration(getEnvInt("SERVER_WRITE_TIMEOUT", 30)) * time.Second,
		},
		Database: DatabaseConfig{
			Enabled:  getEnv("DB_ENABLED", "false") == "true",
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "calc_catalog"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Catalog: CatalogConfig{
			File:            os.Getenv("CATALOG_FILE"),
			RelatedLimit:    getEnvInt("RELATED_LIMIT", 4),
			RelatedMaxLimit: getEnvInt("RELATED_MAX_LIMIT", 12),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Catalog.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c CatalogConfig) validate() error {
	if c.RelatedLimit <= 0 {
		return fmt.Errorf("RELATED_LIMIT must be positive, got %d", c.RelatedLimit)
	}
	if c.RelatedMaxLimit < c.RelatedLimit {
		return fmt.Errorf("RELATED_MAX_LIMIT (%d) must not be below RELATED_LIMIT (%d)", c.RelatedMaxLimit, c.RelatedLimit)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt falls back to defaultValue when the variable is unset or
// not an integer.
func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
