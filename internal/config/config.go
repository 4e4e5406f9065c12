package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort       string
	DBDriver         string
	DBPath           string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	TelegramBotToken string
	APIBaseURL       string
}

func Load() *Config {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "3001"),
		DBDriver:         getEnv("DB_DRIVER", "sqlite"),
		DBPath:           getEnv("DB_PATH", "database.sqlite"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", "postgres"),
		DBName:           getEnv("DB_NAME", "skintrack"),
		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		APIBaseURL:       getEnv("API_BASE_URL", "http://localhost:3001"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
