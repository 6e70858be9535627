package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Storage  StorageConfig
	Vision   VisionConfig
	Queue    QueueConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// StorageConfig holds object storage configuration (supabase storage bucket).
type StorageConfig struct {
	URL    string
	APIKey string
	Bucket string
}

// ProviderConfig holds one vision provider's credentials and endpoint.
type ProviderConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// VisionConfig holds the vision extraction configuration. It is passed into
// the provider registry at construction time; no component reads provider
// keys from the environment directly.
type VisionConfig struct {
	DefaultProvider string
	Providers       map[string]ProviderConfig
	Timeout         time.Duration
}

// QueueConfig holds the dispatch queue configuration.
type QueueConfig struct {
	Workers         int
	Size            int
	DispatchTimeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:             getEnv("DB_URL", ""),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:        getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Storage: StorageConfig{
			URL:    getEnv("STORAGE_URL", ""),
			APIKey: getEnv("STORAGE_API_KEY", ""),
			Bucket: getEnv("STORAGE_BUCKET", "receipts"),
		},
		Vision: VisionConfig{
			DefaultProvider: strings.ToLower(getEnv("VISION_PROVIDER", "openai")),
			Timeout:         getEnvAsDuration("VISION_TIMEOUT", 45*time.Second),
			Providers: map[string]ProviderConfig{
				"openai": {
					APIKey:  getEnv("OPENAI_API_KEY", ""),
					BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
					Model:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
				},
				"openrouter": {
					APIKey:  getEnv("OPENROUTER_API_KEY", ""),
					BaseURL: getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
					Model:   getEnv("OPENROUTER_MODEL", "qwen/qwen2.5-vl-72b-instruct"),
				},
				"gemini": {
					APIKey:  getEnv("GEMINI_API_KEY", ""),
					BaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
					Model:   getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
				},
				"anthropic": {
					APIKey:  getEnv("ANTHROPIC_API_KEY", ""),
					BaseURL: getEnv("ANTHROPIC_BASE_URL", "https://api.anthropic.com/v1"),
					Model:   getEnv("ANTHROPIC_MODEL", "claude-3-5-sonnet-latest"),
				},
			},
		},
		Queue: QueueConfig{
			Workers:         getEnvAsInt("QUEUE_WORKERS", 4),
			Size:            getEnvAsInt("QUEUE_SIZE", 256),
			DispatchTimeout: getEnvAsDuration("QUEUE_DISPATCH_TIMEOUT", 3*time.Minute),
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

// Validate validates the loaded configuration. Provider API keys are not
// required here: a missing key fails the individual extraction attempt with a
// descriptive error instead of preventing startup.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Storage.URL == "" {
		return NewAppError("CONFIG_ERROR", "STORAGE_URL is required", ErrInvalidInput)
	}
	if c.Storage.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "STORAGE_API_KEY is required", ErrInvalidInput)
	}
	if c.Storage.Bucket == "" {
		return NewAppError("CONFIG_ERROR", "STORAGE_BUCKET is required", ErrInvalidInput)
	}
	if _, ok := c.Vision.Providers[c.Vision.DefaultProvider]; !ok {
		return NewAppError("CONFIG_ERROR", "VISION_PROVIDER is not a known provider", ErrInvalidInput)
	}
	return nil
}
