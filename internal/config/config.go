package config

import (
	"os"
)

// Config holds application configuration
type Config struct {
	StoreType string // sqlite, postgres or mysql
	StorePath string // for sqlite
	StoreURL  string // for postgres/mysql

	GeminiAPIKey      string
	GeminiAccessToken string
	GeminiModel       string

	AWSRegion    string
	SESFromEmail string
	SESFromName  string
	EmailDebug   bool
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	return &Config{
		StoreType: getEnv("STORE_TYPE", "sqlite"),
		StorePath: getEnv("STORE_PATH", "./focusapp.db"),
		StoreURL:  getEnv("STORE_URL", ""),

		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiAccessToken: getEnv("GEMINI_ACCESS_TOKEN", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		AWSRegion:    getEnv("AWS_REGION", "eu-west-1"),
		SESFromEmail: getEnv("SES_FROM_EMAIL", ""),
		SESFromName:  getEnv("SES_FROM_NAME", "Focus App"),
		EmailDebug:   getEnv("EMAIL_DEBUG", "") == "true",
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
