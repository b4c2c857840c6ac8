package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverFile     = "file"
	StoreDriverMemory   = "memory"
)

type Config struct {
	HTTPPort string
	LogLevel slog.Level

	StoreDriver string
	DataFile    string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSslMode   string

	KafkaHost              string
	KafkaOrderChangedTopic string
	RedisAddr              string

	PreparationDelay   time.Duration
	AutosaveSchedule   string
	CORSAllowedOrigins []string
}

// LoadConfig reads the configuration from the environment. A .env file in
// the working directory is loaded first when it exists; variables already set
// in the environment win over it.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := Config{
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		StoreDriver:            strings.ToLower(getEnv("STORE_DRIVER", StoreDriverFile)),
		DataFile:               getEnv("DATA_FILE", "catering.json"),
		DBHost:                 getEnv("DB_HOST", "localhost"),
		DBPort:                 getEnv("DB_PORT", "5432"),
		DBUser:                 getEnv("DB_USER", "postgres"),
		DBPassword:             getEnv("DB_PASSWORD", ""),
		DBName:                 getEnv("DB_NAME", "catering"),
		DBSslMode:              getEnv("DB_SSLMODE", "disable"),
		KafkaHost:              getEnv("KAFKA_HOST", ""),
		KafkaOrderChangedTopic: getEnv("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),
		RedisAddr:              getEnv("REDIS_ADDR", ""),
		AutosaveSchedule:       getEnv("AUTOSAVE_SCHEDULE", "@every 1m"),
		CORSAllowedOrigins:     splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	var errList []error

	if err := config.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "INFO"))); err != nil {
		errList = append(errList, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	delay, err := time.ParseDuration(getEnv("PREPARATION_DELAY", "2s"))
	switch {
	case err != nil:
		errList = append(errList, fmt.Errorf("PREPARATION_DELAY: %w", err))
	case delay <= 0:
		errList = append(errList, fmt.Errorf("PREPARATION_DELAY: %s is not positive", delay))
	default:
		config.PreparationDelay = delay
	}

	switch config.StoreDriver {
	case StoreDriverPostgres, StoreDriverFile, StoreDriverMemory:
	default:
		errList = append(errList, fmt.Errorf("STORE_DRIVER: unknown driver %q", config.StoreDriver))
	}

	if err = errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return config, nil
}

// DSN builds the lib/pq connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%s", c.HTTPPort)
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
