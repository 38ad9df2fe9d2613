package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Store  StoreConfig
	App    AppConfig
	Alerts AlertConfig
}

// StoreConfig is the pharmacy profile shown on the settings page.
type StoreConfig struct {
	Name    string
	Address string
	Phone   string
	License string
}

type AppConfig struct {
	CurrencySymbol string
	LogFile        string
	SeedData       bool
}

// AlertConfig controls the derived inventory warnings.
type AlertConfig struct {
	// ExpiryWindowMonths is the "expiring soon" horizon in calendar months.
	ExpiryWindowMonths int
	LowStockAlerts     bool
	ExpiryAlerts       bool
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	expiryMonths, err := strconv.Atoi(getEnv("MEDSTORE_EXPIRY_WINDOW_MONTHS", "3"))
	if err != nil || expiryMonths <= 0 {
		expiryMonths = 3
	}

	return Config{
		Store: StoreConfig{
			Name:    getEnv("MEDSTORE_NAME", "MedStore Pro"),
			Address: getEnv("MEDSTORE_ADDRESS", "123 Main Street, Karachi, Pakistan"),
			Phone:   getEnv("MEDSTORE_PHONE", "+92-21-1234567"),
			License: getEnv("MEDSTORE_LICENSE", "PH-KHI-2024-001"),
		},
		App: AppConfig{
			CurrencySymbol: getEnv("MEDSTORE_CURRENCY", "Rs."),
			LogFile:        getEnv("MEDSTORE_LOG_FILE", "medstore.log"),
			SeedData:       getEnvBool("MEDSTORE_SEED", true),
		},
		Alerts: AlertConfig{
			ExpiryWindowMonths: expiryMonths,
			LowStockAlerts:     getEnvBool("MEDSTORE_LOW_STOCK_ALERTS", true),
			ExpiryAlerts:       getEnvBool("MEDSTORE_EXPIRY_ALERTS", true),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
