package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	PostgreSQL PostgreSQLConfig
	Server     ServerConfig
	Listing    ListingConfig
	Ranking    RankingConfig
	Redis      RedisConfig
	RabbitMQ   RabbitMQConfig
	RateLimit  RateLimitConfig
	Logging    LoggingConfig
	Calculator CalculatorConfig
}

// PostgreSQLConfig holds PostgreSQL database configuration
type PostgreSQLConfig struct {
	DSN                string // full connection string, preferred when set
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
	AutoMigrate        bool
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            int
	Host            string
	GinMode         string
	AllowedOrigins  string
	ShutdownTimeout time.Duration
}

// ListingConfig holds listing search configuration
type ListingConfig struct {
	DefaultLimit    int
	MaxLimit        int
	SimilarLimit    int
	CacheTTL        time.Duration
	MaxImagesInList int
}

// RankingConfig holds similar-listing ranking weights
type RankingConfig struct {
	WeightVector  float64
	WeightPrice   float64
	WeightRecency float64
}

// RedisConfig holds Redis cache configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Enabled  bool
}

// RabbitMQConfig holds the inquiry event publisher configuration
type RabbitMQConfig struct {
	URL        string
	Exchange   string
	RoutingKey string
	Enabled    bool
}

// RateLimitConfig holds inquiry rate limiting configuration
type RateLimitConfig struct {
	Capacity   int
	RefillRate int // tokens per minute
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// CalculatorConfig holds cost calculator configuration
type CalculatorConfig struct {
	TaxPolicyFile string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		PostgreSQL: PostgreSQLConfig{
			DSN:                getEnv("DATABASE_URL", getEnv("POSTGRESQL_URI", getEnv("PG_DSN", ""))),
			Host:               getEnv("PG_HOST", "localhost"),
			Port:               getEnvAsInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "rakshah"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 25),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 5),
			AutoMigrate:        getEnvAsBool("PG_AUTO_MIGRATE", false),
		},
		Server: ServerConfig{
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:         getEnv("GIN_MODE", "release"),
			AllowedOrigins:  getEnv("CORS_ALLOWED_ORIGINS", "*"),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Listing: ListingConfig{
			DefaultLimit:    getEnvAsInt("LISTING_DEFAULT_LIMIT", 12),
			MaxLimit:        getEnvAsInt("LISTING_MAX_LIMIT", 60),
			SimilarLimit:    getEnvAsInt("LISTING_SIMILAR_LIMIT", 4),
			CacheTTL:        getEnvAsDuration("LISTING_CACHE_TTL", 60*time.Second),
			MaxImagesInList: getEnvAsInt("LISTING_MAX_IMAGES", 5),
		},
		Ranking: RankingConfig{
			WeightVector:  getEnvAsFloat("RANK_WEIGHT_VECTOR", 0.6),
			WeightPrice:   getEnvAsFloat("RANK_WEIGHT_PRICE", 0.3),
			WeightRecency: getEnvAsFloat("RANK_WEIGHT_RECENCY", 0.1),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Enabled:  getEnv("REDIS_ADDR", "") != "",
		},
		RabbitMQ: RabbitMQConfig{
			URL:        getEnv("RABBITMQ_URL", ""),
			Exchange:   getEnv("RABBITMQ_EXCHANGE", "rakshah.events"),
			RoutingKey: getEnv("RABBITMQ_INQUIRY_ROUTING_KEY", "inquiry.created"),
			Enabled:    getEnv("RABBITMQ_URL", "") != "",
		},
		RateLimit: RateLimitConfig{
			Capacity:   getEnvAsInt("INQUIRY_RATE_CAPACITY", 5),
			RefillRate: getEnvAsInt("INQUIRY_RATE_PER_MINUTE", 5),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Calculator: CalculatorConfig{
			TaxPolicyFile: getEnv("TAX_POLICY_FILE", ""),
		},
	}

	if cfg.Listing.DefaultLimit <= 0 {
		return nil, fmt.Errorf("LISTING_DEFAULT_LIMIT must be positive, got %d", cfg.Listing.DefaultLimit)
	}
	if cfg.Listing.MaxLimit < cfg.Listing.DefaultLimit {
		return nil, fmt.Errorf("LISTING_MAX_LIMIT (%d) is below LISTING_DEFAULT_LIMIT (%d)", cfg.Listing.MaxLimit, cfg.Listing.DefaultLimit)
	}

	return cfg, nil
}

// GetPostgreSQLDSN returns PostgreSQL connection string
func (c *Config) GetPostgreSQLDSN() string {
	if c.PostgreSQL.DSN != "" {
		return c.PostgreSQL.DSN
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgreSQL.Host,
		c.PostgreSQL.Port,
		c.PostgreSQL.User,
		c.PostgreSQL.Password,
		c.PostgreSQL.Database,
		c.PostgreSQL.SSLMode,
	)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		slog.Warn("invalid integer value, using default", "key", key, "default", defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		slog.Warn("invalid float value, using default", "key", key, "default", defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		slog.Warn("invalid boolean value, using default", "key", key, "default", defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		slog.Warn("invalid duration value, using default", "key", key, "default", defaultValue)
		return defaultValue
	}
	return value
}
