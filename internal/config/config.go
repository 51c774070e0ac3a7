package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs at startup. The store backend
// decides which of the backend-specific fields are read.
type Config struct {
	ServerPort      string
	StoreBackend    string // sheets | excel | postgres
	CredentialsFile string
	SpreadsheetID   string
	ExcelFile       string
	DatabaseURL     string
	LogLevel        string
}

func Load() *Config {
	// .env file is optional, continue without it
	_ = godotenv.Load()

	return &Config{
		ServerPort:      getEnv("APP_PORT", "8080"),
		StoreBackend:    getEnv("STORE_BACKEND", "sheets"),
		CredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
		SpreadsheetID:   getEnv("SPREADSHEET_ID", ""),
		ExcelFile:       getEnv("EXCEL_FILE", "inventory.xlsx"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
