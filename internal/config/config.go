package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Mock    MockConfig
	Storage StorageConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

// MockConfig controls the simulated processing latency per endpoint.
// Delays are sleep-then-respond only and never affect results.
type MockConfig struct {
	QuestionDelay time.Duration
	ResumeDelay   time.Duration
	AnswerDelay   time.Duration
}

type StorageConfig struct {
	UploadPath  string
	PublicPath  string
	MaxFileSize int64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Mock: MockConfig{
			QuestionDelay: getEnvAsDuration("MOCK_QUESTION_DELAY", "1500ms"),
			ResumeDelay:   getEnvAsDuration("MOCK_RESUME_DELAY", "2s"),
			AnswerDelay:   getEnvAsDuration("MOCK_ANSWER_DELAY", "2500ms"),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			PublicPath:  getEnv("PUBLIC_PATH", "./public"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
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
