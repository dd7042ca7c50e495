package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	OpenAIAPIKey   string
	EmbeddingModel string
	ChatModel      string
	Temperature    float64
	MaxTokens      int

	TopK               int
	RelevanceThreshold float64

	// RequestTimeout bounds every pipeline run so a stalled provider cannot
	// wedge a session.
	RequestTimeout time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
			EmbeddingModel:     getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
			ChatModel:          getEnv("CHAT_MODEL", "gpt-4o-mini"),
			Temperature:        getEnvAsFloat("CHAT_TEMPERATURE", 0.7),
			MaxTokens:          getEnvAsInt("CHAT_MAX_TOKENS", 200),
			TopK:               getEnvAsInt("RETRIEVAL_TOP_K", 3),
			RelevanceThreshold: getEnvAsFloat("RELEVANCE_THRESHOLD", 0.1),
			RequestTimeout:     time.Duration(getEnvAsInt("REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
		},
	}
}

// Validate reports missing required settings. Failures here are fatal at
// startup, never per-request.
func (c *Config) Validate() error {
	if c.Ai.OpenAIAPIKey == "" {
		return errors.New("OPENAI_API_KEY is required")
	}
	if c.Database.Connection == "" {
		return errors.New("DB_CONNECTION_STRING is required")
	}
	return nil
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

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
