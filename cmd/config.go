package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"fulfilment/internal/jobs"

	"github.com/joho/godotenv"
)

const defaultWarehouseCacheTTL = 30 * time.Second

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// RedisAddr is host:port of the warehouse cache; empty disables caching.
	RedisAddr         string
	WarehouseCacheTTL time.Duration

	CapacityReportSchedule string
	LogLevel               slog.Level
}

// LoadConfig reads the configuration from the environment after loading .env when the
// file exists.
func LoadConfig() (Config, error) {
	_ = godotenv.Load(".env")
	return configFromEnv(os.Getenv)
}

func configFromEnv(getenv func(string) string) (Config, error) {
	config := Config{
		HTTPPort:               withDefault(getenv("HTTP_PORT"), "8080"),
		DBHost:                 getenv("DB_HOST"),
		DBPort:                 withDefault(getenv("DB_PORT"), "5432"),
		DBUser:                 getenv("DB_USER"),
		DBPassword:             getenv("DB_PASSWORD"),
		DBName:                 getenv("DB_NAME"),
		DBSslMode:              withDefault(getenv("DB_SSLMODE"), "disable"),
		RedisAddr:              getenv("REDIS_ADDR"),
		WarehouseCacheTTL:      defaultWarehouseCacheTTL,
		CapacityReportSchedule: withDefault(getenv("CAPACITY_REPORT_SCHEDULE"), jobs.DefaultCapacityReportSchedule),
		LogLevel:               slog.LevelInfo,
	}

	if raw := getenv("WAREHOUSE_CACHE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("WAREHOUSE_CACHE_TTL: %w", err)
		}
		if ttl <= 0 {
			return Config{}, fmt.Errorf("WAREHOUSE_CACHE_TTL: %s is not positive", raw)
		}
		config.WarehouseCacheTTL = ttl
	}

	if raw := getenv("LOG_LEVEL"); raw != "" {
		if err := config.LogLevel.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
			return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}

	return config, nil
}

// DSN is the Postgres connection string in key=value form, accepted by both pgx and lib/pq.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
