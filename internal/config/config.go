package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Banking service
	APIURL string

	// Signed-in account; transfers are always sent from this identity.
	AccountID int
	// Raw ACCOUNT_ID value, kept so Validate can report a non-numeric
	// setting instead of treating it as unset.
	accountIDRaw string

	// Local state
	ConfigDir  string
	ReceiptDir string

	LogLevel string
}

func Load() *Config {
	accountIDRaw := os.Getenv("ACCOUNT_ID")
	accountID, _ := strconv.Atoi(accountIDRaw)

	return &Config{
		APIURL:       getEnv("API_URL", "http://localhost:8080"),
		AccountID:    accountID,
		accountIDRaw: accountIDRaw,
		ConfigDir:    getEnv("CONFIG_DIR", ""),
		ReceiptDir:   getEnv("RECEIPT_DIR", "."),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var errors []string

	if c.APIURL == "" {
		errors = append(errors, "API_URL cannot be empty")
	}
	if _, err := strconv.Atoi(c.accountIDRaw); c.accountIDRaw != "" && err != nil {
		errors = append(errors, fmt.Sprintf("invalid ACCOUNT_ID '%s': must be a numeric account id", c.accountIDRaw))
	} else if c.AccountID <= 0 {
		errors = append(errors, "ACCOUNT_ID is required and must be a positive account id")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}
	if c.ReceiptDir != "" {
		if info, err := os.Stat(c.ReceiptDir); err == nil && !info.IsDir() {
			errors = append(errors, fmt.Sprintf("receipt directory '%s' is not a directory", c.ReceiptDir))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errors, "; "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
