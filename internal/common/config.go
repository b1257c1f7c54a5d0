package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Register RegisterConfig
	Server   ServerConfig
	OCR      OCRConfig
}

// RegisterConfig holds register output configuration
type RegisterConfig struct {
	CSVPath      string
	PatternsPath string
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	HTTPAddr        string
	MaxUploadBytes  int64
	ShutdownTimeout time.Duration
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	TessdataDir  string
	PdftoppmBin  string
	PdftotextBin string
	MinTextLen   int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Register: RegisterConfig{
			CSVPath:      getEnv("CHEMFETCH_REGISTER_CSV", "data/chemical_register.csv"),
			PatternsPath: getEnv("CHEMFETCH_PATTERNS", ""),
		},
		Server: ServerConfig{
			HTTPAddr:        getEnv("HTTP_ADDR", ":8000"),
			MaxUploadBytes:  getEnvAsInt64("MAX_UPLOAD_BYTES", 32<<20),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		OCR: OCRConfig{
			TessdataDir:  getEnv("TESSDATA_PREFIX", ""),
			PdftoppmBin:  getEnv("PDFTOPPM_BIN", "pdftoppm"),
			PdftotextBin: getEnv("PDFTOTEXT_BIN", "pdftotext"),
			MinTextLen:   getEnvAsInt("OCR_MIN_TEXT_LEN", 30),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Register.CSVPath == "" {
		return NewAppError("CONFIG_ERROR", "CHEMFETCH_REGISTER_CSV is required", ErrConfiguration)
	}
	if c.Server.HTTPAddr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrConfiguration)
	}
	return nil
}
