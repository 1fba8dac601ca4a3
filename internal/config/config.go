package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Jwt      JwtConfig
	N8n      N8nConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string

	// Declared for the rate-limit layer; not consumed anywhere yet.
	RateLimitDefault string
	RateLimitLogin   string
}

type DatabaseConfig struct {
	Connection string
}

type JwtConfig struct {
	Secret        string
	ExpiryMinutes int
}

type N8nConfig struct {
	BaseURL        string
	WebhookPath    string
	TimeoutSeconds int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			RateLimitDefault:   getEnv("RATELIMIT_DEFAULT", "100 per hour"),
			RateLimitLogin:     getEnv("RATELIMIT_LOGIN", "5 per minute"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Jwt: JwtConfig{
			Secret:        getEnv("JWT_SECRET", "your-super-secret-jwt-key"),
			ExpiryMinutes: getEnvAsInt("JWT_EXPIRY_MINUTES", 30),
		},
		N8n: N8nConfig{
			BaseURL:        getEnv("N8N_URL", "http://localhost:5678"),
			WebhookPath:    getEnv("N8N_WEBHOOK_PATH", "/webhook-test/n8n/init"),
			TimeoutSeconds: getEnvAsInt("N8N_TIMEOUT_SECONDS", 30),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
