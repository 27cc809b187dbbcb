// Package config provides configuration management for the calling
// application. The analysis pipeline itself never reads the environment;
// everything it needs arrives through constructors.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Logging
	LogLevel  string
	LogPretty bool

	// Report storage
	DatabasePath string

	// Model artifact location. When both S3 fields are set the artifact
	// is fetched from S3, otherwise from the local path.
	ModelPath         string
	ModelMetadataPath string
	ModelBucket       string
	ModelKey          string
	ModelRegion       string
	AWSAccessKey      string
	AWSSecretKey      string

	// Analysis
	WindowHours int

	// Scheduled monitoring
	MonitorSchedule    string
	ReportHistoryLimit int
}

// Load reads configuration from the environment, with an optional .env
// file for local development.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if it doesn't)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogPretty: getEnvAsBool("LOG_PRETTY", false),

		DatabasePath: getEnv("REPORTS_DB_PATH", "data/reports.db"),

		ModelPath:         getEnv("MODEL_PATH", "models/heart_rhythm_ensemble.msgpack"),
		ModelMetadataPath: getEnv("MODEL_METADATA_PATH", "models/model_metadata.json"),
		ModelBucket:       getEnv("MODEL_S3_BUCKET", ""),
		ModelKey:          getEnv("MODEL_S3_KEY", ""),
		ModelRegion:       getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKey:      getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:      getEnv("AWS_SECRET_ACCESS_KEY", ""),

		WindowHours: getEnvAsInt("ANALYSIS_WINDOW_HOURS", 24),

		MonitorSchedule:    getEnv("MONITOR_SCHEDULE", "@hourly"),
		ReportHistoryLimit: getEnvAsInt("REPORT_HISTORY_LIMIT", 50),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UsesS3 reports whether the model artifact lives in S3.
func (c *Config) UsesS3() bool {
	return c.ModelBucket != "" && c.ModelKey != ""
}

// Validate checks that the configuration is coherent.
func (c *Config) Validate() error {
	if c.WindowHours <= 0 {
		return fmt.Errorf("analysis window must be positive, got %d hours", c.WindowHours)
	}
	if c.ReportHistoryLimit <= 0 {
		return fmt.Errorf("report history limit must be positive, got %d", c.ReportHistoryLimit)
	}
	if c.ModelBucket != "" && c.ModelKey == "" {
		return fmt.Errorf("MODEL_S3_KEY is required when MODEL_S3_BUCKET is set")
	}
	if c.ModelPath == "" && !c.UsesS3() {
		return fmt.Errorf("model source required: set MODEL_PATH or MODEL_S3_BUCKET and MODEL_S3_KEY")
	}
	return nil
}

// getEnv gets an environment variable with a fallback default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer with a fallback.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool gets an environment variable as a boolean with a fallback.
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
