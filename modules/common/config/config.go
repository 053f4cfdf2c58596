package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config - all environment-derived settings
type Config struct {
	// Server
	Port string

	// Gemini API
	GeminiAPIKey     string
	GeminiTextModel  string
	GeminiImageModel string
}

var globalConfig *Config

// LoadConfig - load environment variables (.env.local first, then .env)
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️  .env file not found, using environment variables")
		}
	}

	globalConfig = &Config{
		// Server
		Port: getEnv("PORT", "8080"),

		// Gemini API
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiTextModel:  getEnv("GEMINI_TEXT_MODEL", "gemini-3-flash-preview"),
		GeminiImageModel: getEnv("GEMINI_IMAGE_MODEL", "gemini-2.5-flash-image"),
	}

	// The API key is checked lazily on each provider call so that a
	// misconfigured server still answers requests with a proper error body.
	if globalConfig.GeminiAPIKey == "" {
		log.Println("⚠️  GEMINI_API_KEY is not set, generation requests will fail")
	}

	log.Println("✅ Configuration loaded successfully")
	log.Printf("   Port: %s", globalConfig.Port)
	log.Printf("   Gemini text model: %s", globalConfig.GeminiTextModel)
	log.Printf("   Gemini image model: %s", globalConfig.GeminiImageModel)

	return globalConfig, nil
}

// GetConfig - get the loaded configuration
func GetConfig() *Config {
	if globalConfig == nil {
		log.Fatal("❌ Config not loaded. Call LoadConfig() first.")
	}
	return globalConfig
}

// getEnv - read an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
