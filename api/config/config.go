package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Store modes selectable via STORE_MODE.
const (
	// StoreModePreview serves the fixture gateway; no backend is contacted.
	StoreModePreview = "preview"
	// StoreModeStripe serves the live Stripe-backed gateway.
	StoreModeStripe = "stripe"
)

// AppConfig holds the global application configuration
var AppConfig *Config

// Config holds the application configuration
type Config struct {
	StoreMode        string
	StripeSecretKey  string
	StripeCustomerID string
	DatabaseURL      string
	// PurchaseDelayMS is the preview purchase delay in milliseconds.
	PurchaseDelayMS string
	// HTTP server port
	HTTPPort string
}

// PurchaseDelay returns the configured preview purchase delay, or zero when
// unset or unparsable (the preview gateway applies its own default).
func (c *Config) PurchaseDelay() time.Duration {
	ms, err := strconv.Atoi(c.PurchaseDelayMS)
	if err != nil || ms < 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{}

	// Try to load .env file from current directory and parent directories
	currentDir, _ := os.Getwd()
	for currentDir != "/" {
		// Check if .env file exists in current directory
		envPath := filepath.Join(currentDir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// Load .env file
			err = godotenv.Load(envPath)
			if err != nil {
				return nil, fmt.Errorf("failed to load .env file: %v", err)
			}
			break
		}
		// Move up one directory
		currentDir = filepath.Dir(currentDir)
	}

	// Everything is optional in preview mode; stripe mode requirements are
	// enforced below once the mode is known.
	vars := []struct {
		name   string
		envVar string
	}{
		{"StoreMode", "STORE_MODE"},
		{"StripeSecretKey", "STRIPE_SECRET_KEY"},
		{"StripeCustomerID", "STRIPE_CUSTOMER_ID"},
		{"DatabaseURL", "DATABASE_URL"},
		{"PurchaseDelayMS", "PURCHASE_DELAY_MS"},
		{"HTTPPort", "PORT"},
	}

	for _, v := range vars {
		value := os.Getenv(v.envVar)
		configField := reflect.ValueOf(config).Elem().FieldByName(v.name)
		configField.SetString(value)
	}

	// Defaults
	if config.StoreMode == "" {
		config.StoreMode = StoreModePreview
	}
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}

	switch config.StoreMode {
	case StoreModePreview:
	case StoreModeStripe:
		if config.StripeSecretKey == "" {
			return nil, fmt.Errorf("missing required environment variable for stripe mode: Stripe Secret Key")
		}
		if config.StripeCustomerID == "" {
			return nil, fmt.Errorf("missing required environment variable for stripe mode: Stripe Customer ID")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("missing required environment variable for stripe mode: Database URL")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_MODE %q (want %s or %s)", config.StoreMode, StoreModePreview, StoreModeStripe)
	}

	return config, nil
}
