package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App  AppConfig
	Auth AuthConfig
	Ai   AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	DataFilePath       string
}

type AuthConfig struct {
	SessionTTL        time.Duration
	MinPasswordLength int
}

type AIConfig struct {
	APIKey  string // empty disables remote generation entirely
	BaseURL string
	Model   string
	Timeout time.Duration

	// OpenRouter attribution (optional)
	SiteURL string
	AppName string
}

// Enabled reports whether a remote text-generation credential is
// configured; without one the coach always answers locally.
func (c AIConfig) Enabled() bool {
	return c.APIKey != ""
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			DataFilePath:       getEnv("DATA_FILE_PATH", "data/db.json"),
		},
		Auth: AuthConfig{
			SessionTTL:        time.Duration(getEnvAsInt("SESSION_TTL_DAYS", 30)) * 24 * time.Hour,
			MinPasswordLength: getEnvAsInt("MIN_PASSWORD_LENGTH", 6),
		},
		Ai: AIConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			Timeout: time.Duration(getEnvAsInt("OPENAI_TIMEOUT_MS", 25000)) * time.Millisecond,
			SiteURL: getEnv("OPENROUTER_SITE_URL", ""),
			AppName: getEnv("OPENROUTER_APP_NAME", "OneMore"),
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
