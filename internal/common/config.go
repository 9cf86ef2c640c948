package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	LLM      LLMConfig
	Pipeline PipelineConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration
	MaxUploadMB     int64
}

// LLMConfig holds extraction-model configuration. SystemPrompt and UserPrompt
// carry the externally configured extraction instructions.
type LLMConfig struct {
	BaseURL      string
	Model        string
	APIKey       string
	SystemPrompt string
	UserPrompt   string
	Timeout      time.Duration
}

// PipelineConfig holds upload-processing defaults
type PipelineConfig struct {
	PagesPerChunk int
	RenderDPI     int
	JPEGQuality   int
	TempDir       string
}

const (
	defaultSystemPrompt = "You are an assistant that extracts retail offers from supermarket flyer pages. " +
		"Read the attached page image and return every offer you can identify. " +
		"Return ONLY JSON that matches the provided JSON schema. " +
		"Use ISO-8601 dates (YYYY-MM-DD) for offerDateStart and offerDateEnd. " +
		"Set brand and originalPrice to null when they are not printed on the page."
	defaultUserPrompt = "Extract all offers from this flyer page. Include store name, product name, brand, " +
		"quantity or unit description, the discounted price, the original price if shown, and the validity dates."
)

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
			ShutdownTimeout: getEnvAsDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
			MaxUploadMB:     int64(getEnvAsInt("MAX_UPLOAD_MB", 64)),
		},
		LLM: LLMConfig{
			BaseURL:      getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:        getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:       getEnv("OPENAI_API_KEY", ""),
			SystemPrompt: getEnv("OPENAI_SYSTEM_PROMPT", defaultSystemPrompt),
			UserPrompt:   getEnv("OPENAI_USER_PROMPT", defaultUserPrompt),
			Timeout:      getEnvAsDuration("OPENAI_TIMEOUT", 90*time.Second),
		},
		Pipeline: PipelineConfig{
			PagesPerChunk: getEnvAsInt("PAGES_PER_CHUNK", 5),
			RenderDPI:     getEnvAsInt("RENDER_DPI", 300),
			JPEGQuality:   getEnvAsInt("JPEG_QUALITY", 85),
			TempDir:       getEnv("PIPELINE_TMP_DIR", ""),
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

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
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
	if c.Database.DSN == "" {
		return NewConfigError("DB_URL is required")
	}
	if c.LLM.APIKey == "" {
		return NewConfigError("OPENAI_API_KEY is required")
	}
	if c.Server.HTTPAddr == "" {
		return NewConfigError("HTTP_ADDR is required")
	}
	if c.Pipeline.PagesPerChunk < 1 {
		return NewConfigError("PAGES_PER_CHUNK must be >= 1")
	}
	return nil
}
