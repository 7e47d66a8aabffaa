package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"log"
)

type Config struct {
	PostgresDSN       string
	ServerPort        string
	AlphaVantageURL   string
	AlphaVantageKey   string
	RequestTimeoutSec int
	DailyRequestQuota int
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("POSTGRES_HOST", "localhost"),
		getEnv("POSTGRES_PORT", "5432"),
		getEnv("POSTGRES_USER", "postgres"),
		getEnv("POSTGRES_PASSWORD", ""),
		getEnv("POSTGRES_DB", "stockvault"),
		getEnv("POSTGRES_SSLMODE", "disable"),
	)

	return &Config{
		PostgresDSN:       dsn,
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		AlphaVantageURL:   getEnv("ALPHA_API_URL", "https://www.alphavantage.co/query"),
		AlphaVantageKey:   getEnv("ALPHA_API_KEY", ""),
		RequestTimeoutSec: getEnvInt("REQUEST_TIMEOUT_SEC", 15),
		DailyRequestQuota: getEnvInt("DAILY_REQUEST_QUOTA", 25),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
