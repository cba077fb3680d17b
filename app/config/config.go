package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr string
	APIBaseURL string
}

var AppConfig *Config

// Init loads configuration from the environment. A .env file in the
// working directory is read first when present.
func Init() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env file")
	}

	AppConfig = &Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8000"),
	}

	log.Printf("Events API base URL: %s", AppConfig.APIBaseURL)
}

func Get() *Config {
	return AppConfig
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
