package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	// SQLitePath is used when DBHost is empty (development / tests).
	SQLitePath string

	// Redis (optional, dashboard response cache)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	// JWT
	JwtSecret string
	JwtTTL    time.Duration

	// Server
	Port string

	// Email (SMTP)
	EmailHost   string
	EmailPort   int
	EmailSecure bool
	EmailUser   string
	EmailPass   string
	EmailFrom   string
	EmailTo     string
	// LogEmailsPath, when set, appends every outbound email to a file.
	LogEmailsPath string

	// Uploads
	UploadDir         string
	ImageMaxDimension int

	// AWS S3 (optional upload backend)
	AwsAccessKeyID     string
	AwsSecretAccessKey string
	AwsRegion          string
	AwsS3Bucket        string
	ImageBaseS3URL     string

	// Rate limiting
	RateLimitBucketSize int
	RateLimitRefillRate int // tokens per second
}

// Load configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file, ignoring errors if it doesn't exist
	godotenv.Load()

	cfg := &Config{}

	var err error

	// Helper function to get env var or default
	getEnv := func(key, defaultValue string) string {
		if value, exists := os.LookupEnv(key); exists {
			return value
		}
		return defaultValue
	}

	// Helper function to get required env var
	getRequiredEnv := func(key string) (string, error) {
		value, exists := os.LookupEnv(key)
		if !exists {
			return "", fmt.Errorf("missing required environment variable: %s", key)
		}
		return value, nil
	}

	cfg.DBHost = getEnv("DB_HOST", "")
	cfg.DBPort = getEnv("DB_PORT", "5432")
	cfg.DBName = getEnv("DB_NAME", "rps_site")
	cfg.DBUser = getEnv("DB_USER", "")
	cfg.DBPassword = getEnv("DB_PASSWORD", "")
	cfg.SQLitePath = getEnv("SQLITE_PATH", "rps_site.db")

	cfg.RedisAddr = getEnv("REDIS_ADDR", "")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg.JwtSecret, err = getRequiredEnv("JWT_SECRET")
	if err != nil {
		return nil, err
	}

	jwtTTLSeconds, err := strconv.ParseInt(getEnv("JWT_TTL_SECONDS", "86400"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL_SECONDS: %w", err)
	}
	cfg.JwtTTL = time.Duration(jwtTTLSeconds) * time.Second

	cacheTTLSeconds, err := strconv.ParseInt(getEnv("CACHE_TTL_SECONDS", "60"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL_SECONDS: %w", err)
	}
	cfg.CacheTTL = time.Duration(cacheTTLSeconds) * time.Second

	cfg.Port = getEnv("PORT", "5001")

	cfg.EmailHost = getEnv("EMAIL_HOST", "")
	cfg.EmailPort, err = strconv.Atoi(getEnv("EMAIL_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid EMAIL_PORT: %w", err)
	}
	cfg.EmailSecure = getEnv("EMAIL_SECURE", "false") == "true"
	cfg.EmailUser = getEnv("EMAIL_USER", "")
	cfg.EmailPass = getEnv("EMAIL_PASS", "")
	cfg.EmailFrom = getEnv("EMAIL_FROM", cfg.EmailUser)
	cfg.EmailTo = getEnv("EMAIL_TO", "admin@rpstours.com")
	cfg.LogEmailsPath = getEnv("LOG_EMAILS", "")

	cfg.UploadDir = getEnv("UPLOAD_DIR", "uploads")
	cfg.ImageMaxDimension, err = strconv.Atoi(getEnv("IMAGE_MAX_DIMENSION", "2048"))
	if err != nil {
		return nil, fmt.Errorf("invalid IMAGE_MAX_DIMENSION: %w", err)
	}

	cfg.AwsAccessKeyID = getEnv("AWS_ACCESS_KEY_ID", "")
	cfg.AwsSecretAccessKey = getEnv("AWS_SECRET_ACCESS_KEY", "")
	cfg.AwsRegion = getEnv("AWS_REGION", "")
	cfg.AwsS3Bucket = getEnv("AWS_S3_BUCKET", "")
	cfg.ImageBaseS3URL = getEnv("IMAGE_BASE_S3_URL", "")

	cfg.RateLimitBucketSize, err = strconv.Atoi(getEnv("RATE_LIMIT_BUCKET_SIZE", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BUCKET_SIZE: %w", err)
	}
	cfg.RateLimitRefillRate, err = strconv.Atoi(getEnv("RATE_LIMIT_REFILL_RATE", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_REFILL_RATE: %w", err)
	}

	return cfg, nil
}

// UsePostgres reports whether a Postgres host is configured. When false the
// server falls back to the on-disk SQLite database.
func (c *Config) UsePostgres() bool {
	return c.DBHost != ""
}

// PostgresDSN builds the DSN for the configured Postgres database.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}
