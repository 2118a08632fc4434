package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Auth     AuthConfig
	Services ServicesConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Swipe    SwipeConfig
	Digest   DigestConfig
	Push     PushConfig
	Server   ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds session validation settings
type AuthConfig struct {
	// JWTSecret is the secret the auth provider signs access tokens with
	JWTSecret string
	Audience  string
}

// ServicesConfig holds external service API keys and configuration
type ServicesConfig struct {
	ResendAPIKey       string
	DefaultEmailSender string
	WebAppURI          string
}

// RedisConfig holds Redis connection settings (locks and the job queue)
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// Addr returns host:port for clients that take a single address
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// KafkaConfig holds Kafka/event streaming configuration
type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
}

// SwipeConfig holds swipe policy
type SwipeConfig struct {
	DailyLimit int
	Location   *time.Location
}

// DigestConfig holds notification digest worker settings
type DigestConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// PushConfig holds VAPID credentials for Web Push
type PushConfig struct {
	VAPIDPublicKey  string
	VAPIDPrivateKey string
	Subscriber      string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}
	return fromEnv()
}

func fromEnv() (*Config, error) {
	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Auth configuration
	if cfg.Auth.JWTSecret, err = requireEnv("SUPABASE_JWT_SECRET"); err != nil {
		return nil, err
	}
	cfg.Auth.Audience = getEnvWithDefault("SUPABASE_JWT_AUDIENCE", "authenticated")

	// Services configuration
	cfg.Services.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Services.DefaultEmailSender = getEnvWithDefault("DEFAULT_EMAIL_SENDER_ADDRESS", "ITDA <noreply@itda.app>")
	if cfg.Services.WebAppURI, err = requireEnv("WEBAPP_URI"); err != nil {
		return nil, err
	}

	// Redis configuration
	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "true") == "true"
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.Port, err = intEnv("REDIS_PORT", "6379"); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = intEnv("REDIS_DB", "0"); err != nil {
		return nil, err
	}

	// Kafka configuration
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.Kafka.Enabled = true
		cfg.Kafka.Brokers = strings.Split(brokers, ",")
	}
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "itda-events")

	// Swipe policy
	if cfg.Swipe.DailyLimit, err = intEnv("DAILY_SWIPE_LIMIT", "10"); err != nil {
		return nil, err
	}
	if cfg.Swipe.DailyLimit <= 0 {
		return nil, fmt.Errorf("DAILY_SWIPE_LIMIT must be positive, got %d", cfg.Swipe.DailyLimit)
	}
	tz := getEnvWithDefault("SWIPE_TIMEZONE", "Asia/Seoul")
	if cfg.Swipe.Location, err = time.LoadLocation(tz); err != nil {
		return nil, fmt.Errorf("failed to load SWIPE_TIMEZONE %q: %w", tz, err)
	}

	// Digest worker
	if cfg.Digest.PollInterval, err = time.ParseDuration(getEnvWithDefault("DIGEST_POLL_INTERVAL", "1m")); err != nil {
		return nil, fmt.Errorf("failed to parse DIGEST_POLL_INTERVAL: %w", err)
	}
	if cfg.Digest.BatchSize, err = intEnv("DIGEST_BATCH_SIZE", "50"); err != nil {
		return nil, err
	}

	// Web Push
	cfg.Push.VAPIDPublicKey = os.Getenv("VAPID_PUBLIC_KEY")
	cfg.Push.VAPIDPrivateKey = os.Getenv("VAPID_PRIVATE_KEY")
	cfg.Push.Subscriber = getEnvWithDefault("VAPID_SUBSCRIBER", "admin@itda.app")

	// Server configuration
	if cfg.Server.Port, err = intEnv("SERVER_PORT", "8080"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func intEnv(key, defaultValue string) (int, error) {
	v, err := strconv.Atoi(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}
