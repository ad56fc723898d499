package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Keys       APIKeys
	Ai         AIConfig
	Extraction ExtractionConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	GoogleGemini string
}

type AIConfig struct {
	LLMProvider   string // "gemini" or "ollama"
	ModelFast     string // standard mode tier
	ModelAdvanced string // research/analysis mode tier
	OllamaBaseURL string
	OllamaModel   string
	OCRBaseURL    string // remote OCR service, empty = OCR stage disabled
}

type ExtractionConfig struct {
	BatchTimeout time.Duration // outer ceiling for a whole attachment batch
	StageTimeout time.Duration // per-stage ceiling inside the image cascade
	Concurrency  int           // worker pool size across files in a batch
	MaxFileChars int           // per-file character ceiling in the assembled context
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "gemini"),
			ModelFast:     getEnv("LLM_MODEL_FAST", "gemini-2.0-flash-lite"),
			ModelAdvanced: getEnv("LLM_MODEL_ADVANCED", "gemini-2.0-flash"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:   getEnv("OLLAMA_MODEL", "llama3"),
			OCRBaseURL:    getEnv("OCR_BASE_URL", ""),
		},
		Extraction: ExtractionConfig{
			BatchTimeout: getEnvAsDuration("EXTRACTION_BATCH_TIMEOUT", 8*time.Second),
			StageTimeout: getEnvAsDuration("EXTRACTION_STAGE_TIMEOUT", 10*time.Second),
			Concurrency:  getEnvAsInt("EXTRACTION_CONCURRENCY", 3),
			MaxFileChars: getEnvAsInt("EXTRACTION_MAX_FILE_CHARS", 10000),
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

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
