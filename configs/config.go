package configs

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Limits holds the content bounds enforced by the domain services.
// Defaults mirror the persisted schema; override via env when the
// schema changes.
type Limits struct {
	CircleNameMax     int
	CircleDescMax     int
	PostContentMax    int
	CommentContentMax int
}

type Config struct {
	AppPort string

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	RedisAddr string

	KafkaBrokerURL string
	KafkaTopic     string

	// InviteCodeBytes is the number of random bytes per invite code;
	// codes are hex encoded, so the token is twice this long.
	InviteCodeBytes int

	FeedCacheTTL time.Duration

	Limits Limits
}

func LoadConfig() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", ":8080"),

		DBHost: getEnv("DB_HOST", "localhost"),
		DBPort: getEnv("DB_PORT", "5432"),
		DBUser: getEnv("DB_USER", "postgres"),
		DBPass: getEnv("DB_PASSWORD", "postgres"),
		DBName: getEnv("DB_NAME", "circle_db"),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),

		KafkaBrokerURL: getEnv("KAFKA_BROKER_URL", "localhost:9092"),
		KafkaTopic:     getEnv("KAFKA_TOPIC", "circle-events"),

		InviteCodeBytes: getEnvInt("INVITE_CODE_BYTES", 6),

		FeedCacheTTL: time.Duration(getEnvInt("FEED_CACHE_TTL_SECONDS", 30)) * time.Second,

		Limits: Limits{
			CircleNameMax:     getEnvInt("CIRCLE_NAME_MAX", 50),
			CircleDescMax:     getEnvInt("CIRCLE_DESC_MAX", 200),
			PostContentMax:    getEnvInt("POST_CONTENT_MAX", 1000),
			CommentContentMax: getEnvInt("COMMENT_CONTENT_MAX", 500),
		},
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName,
	)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
