package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Gemini  GeminiConfig
	Storage StorageConfig
	Fetcher FetcherConfig
	Webhook WebhookConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type StorageConfig struct {
	// TempDir is the transient document directory. Empty means a fresh
	// os.MkdirTemp directory is created at startup.
	TempDir string
}

type FetcherConfig struct {
	Timeout time.Duration
}

type WebhookConfig struct {
	URL     string
	Timeout time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8000"),
			Env:  getEnv("ENV", "development"),
		},
		Gemini: GeminiConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			Model:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Timeout: getEnvAsDuration("GEMINI_TIMEOUT", "60s"),
		},
		Storage: StorageConfig{
			TempDir: getEnv("TEMP_DIR", ""),
		},
		Fetcher: FetcherConfig{
			Timeout: getEnvAsDuration("FETCH_TIMEOUT", "30s"),
		},
		Webhook: WebhookConfig{
			URL:     getEnv("WEBHOOK_URL", "https://rnd-assignment.automations-3d6.workers.dev/"),
			Timeout: getEnvAsDuration("WEBHOOK_TIMEOUT", "10s"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
