package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	// Google Cloud
	ProjectID string
	Location  string

	// Server
	Port  string
	Debug bool

	// Gemini Model
	GeminiModel   string
	GeminiEnabled bool

	// Timeouts and limits
	ScanTimeoutSeconds    int
	ExplainTimeoutSeconds int
	HTTPTimeoutSeconds    int
	MaxUploadBytes        int64
	HistoryLimit          int

	// Authentication
	JWTSecret      string
	JWTExpiryHours int

	// Cloud Storage
	ResumeBucketName string

	// Billing
	CheckoutURL    string
	CheckoutAPIKey string
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Google Cloud
		ProjectID: getEnv("PROJECT_ID", ""),
		Location:  getEnv("LOCATION", "us-central1"),

		// Server
		Port:  getEnv("PORT", "8080"),
		Debug: getEnvBool("DEBUG", false),

		// Gemini Model
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiEnabled: getEnvBool("GEMINI_ENABLED", false),

		// Timeouts and limits
		ScanTimeoutSeconds:    getEnvInt("SCAN_TIMEOUT_SECONDS", 60),
		ExplainTimeoutSeconds: getEnvInt("EXPLAIN_TIMEOUT_SECONDS", 15),
		HTTPTimeoutSeconds:    getEnvInt("HTTP_TIMEOUT_SECONDS", 30),
		MaxUploadBytes:        getEnvInt64("MAX_UPLOAD_BYTES", 10<<20),
		HistoryLimit:          getEnvInt("HISTORY_LIMIT", 50),

		// Authentication
		JWTSecret:      getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 24),

		// Cloud Storage
		ResumeBucketName: getEnv("RESUME_BUCKET_NAME", ""),

		// Billing
		CheckoutURL:    getEnv("CHECKOUT_URL", ""),
		CheckoutAPIKey: getEnv("CHECKOUT_API_KEY", ""),
	}

	return cfg
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.GeminiEnabled && c.ProjectID == "" {
		return &ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required when GEMINI_ENABLED is set"}
	}
	if c.ScanTimeoutSeconds <= 0 {
		return &ConfigError{Field: "SCAN_TIMEOUT_SECONDS", Message: "SCAN_TIMEOUT_SECONDS must be positive"}
	}
	if c.MaxUploadBytes <= 0 {
		return &ConfigError{Field: "MAX_UPLOAD_BYTES", Message: "MAX_UPLOAD_BYTES must be positive"}
	}
	return nil
}

// ScanTimeout is the budget for one full scan pipeline run
func (c *Config) ScanTimeout() time.Duration {
	return time.Duration(c.ScanTimeoutSeconds) * time.Second
}

// ExplainTimeout bounds one explanation model call inside a scan
func (c *Config) ExplainTimeout() time.Duration {
	return time.Duration(c.ExplainTimeoutSeconds) * time.Second
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
