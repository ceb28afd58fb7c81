package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr   string
	RateLimitMax int // requests per minute per IP

	// Storage
	DatabaseURL string
	RedisURL    string // optional, backs the rate limiter when set
	SeedDevData bool

	// Knowledge sources
	LocalFAQFile          string
	GoogleCredentialsFile string // env: GOOGLE_APPLICATION_CREDENTIALS
	GoogleAPIKey          string
	FeedASheetID          string
	FeedARange            string
	FeedBSheetID          string
	FeedBRange            string
	KeywordSheetID        string
	KeywordRange          string

	// Resolution
	FAQCacheTTL           time.Duration
	FAQMinScore           float64
	KeywordFuzzyThreshold float64
	SourceTimeout         time.Duration
	CacheWarmInterval     time.Duration // 0 disables the background warmer
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	return &Config{
		Env:          getEnv("ENV", "production"),
		ServerAddr:   getEnv("SERVER_ADDR", ":3000"),
		RateLimitMax: getEnvInt("RATE_LIMIT_MAX", 100),

		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/campusfaq?sslmode=disable"),
		RedisURL:    getEnv("REDIS_URL", ""),
		SeedDevData: getEnv("SEED_DEV_DATA", "") != "",

		LocalFAQFile:          getEnv("LOCAL_FAQ_FILE", "faqs.json"),
		GoogleCredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		GoogleAPIKey:          getEnv("GOOGLE_API_KEY", ""),
		FeedASheetID:          getEnv("FEED_A_SHEET_ID", ""),
		FeedARange:            getEnv("FEED_A_RANGE", "FAQ!A:C"),
		FeedBSheetID:          getEnv("FEED_B_SHEET_ID", ""),
		FeedBRange:            getEnv("FEED_B_RANGE", "FAQ!A:C"),
		KeywordSheetID:        getEnv("KEYWORD_SHEET_ID", ""),
		KeywordRange:          getEnv("KEYWORD_RANGE", "Keywords!A:B"),

		FAQCacheTTL:           getEnvDuration("FAQ_CACHE_TTL", 5*time.Minute),
		FAQMinScore:           getEnvFloat("FAQ_MIN_SCORE", 0.5),
		KeywordFuzzyThreshold: getEnvFloat("KEYWORD_FUZZY_THRESHOLD", 0.6),
		SourceTimeout:         getEnvDuration("SOURCE_TIMEOUT", 10*time.Second),
		CacheWarmInterval:     getEnvDuration("CACHE_WARM_INTERVAL", 0),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", value)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		slog.Warn("invalid number in environment, using default", "key", key, "value", value)
		return fallback
	}
	return f
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", value)
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// HasGoogleCredentials reports whether any Google API credentials are configured.
func (c *Config) HasGoogleCredentials() bool {
	return c.GoogleCredentialsFile != "" || c.GoogleAPIKey != ""
}
