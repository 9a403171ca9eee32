package config

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Currency is one row of the configured currency table.
type Currency struct {
	Code          string          `json:"currencyCode"`
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	Rate          decimal.Decimal `json:"rate"`
	SubunitDigits int32           `json:"subunitDigits"`
}

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// ReferenceCurrency is the code of the currency the ledger balance is
	// denominated in. It must appear in Currencies.
	ReferenceCurrency string
	StartingBalance   decimal.Decimal
	Currencies        []Currency

	// DirectoryEntries maps user identifiers to payable addresses for the
	// static address directory.
	DirectoryEntries map[string]string

	TransferTimeout time.Duration
	IdempotencyTTL  time.Duration
	SendRateLimit   string
}

// defaultCurrencies is the demo currency table: rates are units per 1 BTC.
const defaultCurrencies = `[
	{"currencyCode":"BTC","symbol":"₿","name":"Bitcoin","rate":"1","subunitDigits":8},
	{"currencyCode":"USD","symbol":"$","name":"US Dollar","rate":"740","subunitDigits":2},
	{"currencyCode":"CNY","symbol":"¥","name":"Chinese Yuan","rate":"5000","subunitDigits":2},
	{"currencyCode":"EUR","symbol":"€","name":"Euro","rate":"666","subunitDigits":2}
]`

const defaultDirectory = `{"demo-user":"1AFakeUserBitcoinAddressForDemo123"}`

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("REFERENCE_CURRENCY", "BTC")
	viper.SetDefault("STARTING_BALANCE", "100")
	viper.SetDefault("CURRENCIES", defaultCurrencies)
	viper.SetDefault("DIRECTORY", defaultDirectory)
	viper.SetDefault("TRANSFER_TIMEOUT", "10s")
	viper.SetDefault("IDEMPOTENCY_TTL", "24h")
	viper.SetDefault("SEND_RATE_LIMIT", "30-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.ReferenceCurrency = viper.GetString("REFERENCE_CURRENCY")
	cfg.SendRateLimit = viper.GetString("SEND_RATE_LIMIT")

	startingBalance, err := decimal.NewFromString(viper.GetString("STARTING_BALANCE"))
	if err != nil {
		return nil, fmt.Errorf("invalid STARTING_BALANCE: %w", err)
	}
	cfg.StartingBalance = startingBalance

	if err := json.Unmarshal([]byte(viper.GetString("CURRENCIES")), &cfg.Currencies); err != nil {
		return nil, fmt.Errorf("invalid CURRENCIES table: %w", err)
	}
	if err := json.Unmarshal([]byte(viper.GetString("DIRECTORY")), &cfg.DirectoryEntries); err != nil {
		return nil, fmt.Errorf("invalid DIRECTORY table: %w", err)
	}

	cfg.TransferTimeout, err = time.ParseDuration(viper.GetString("TRANSFER_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid TRANSFER_TIMEOUT: %w", err)
	}

	cfg.IdempotencyTTL, err = time.ParseDuration(viper.GetString("IDEMPOTENCY_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid IDEMPOTENCY_TTL: %w", err)
	}

	return cfg, nil
}
