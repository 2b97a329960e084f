package config

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Config struct {
	StoreBackend string
	DataDir      string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string

	RedisHost   string
	RedisPort   string
	RedisPrefix string

	// KafkaBroker empty disables order events.
	KafkaBroker      string
	KafkaOrdersTopic string

	ReceiptBaseURL string

	LogLevel  string
	LogFormat string
}

// Load reads .env from the working directory when present and then the
// process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	return FromEnv(), nil
}

func FromEnv() Config {
	return Config{
		StoreBackend:     getEnv("STORE_BACKEND", BackendFile),
		DataDir:          getEnv("DATA_DIR", "data"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBName:           getEnv("DB_NAME", "food_delivery"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", ""),
		RedisHost:        getEnv("REDIS_HOST", "localhost"),
		RedisPort:        getEnv("REDIS_PORT", "6379"),
		RedisPrefix:      getEnv("REDIS_PREFIX", "food-delivery"),
		KafkaBroker:      getEnv("KAFKA_BROKER", ""),
		KafkaOrdersTopic: getEnv("KAFKA_ORDERS_TOPIC", "orders"),
		ReceiptBaseURL:   getEnv("RECEIPT_BASE_URL", "http://localhost:8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
	}
}

// SetupLogging applies the configured level and format to the standard
// logrus logger. An unknown level falls back to info.
func (c Config) SetupLogging() {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.WithField("level", c.LogLevel).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if c.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// PostgresDSN builds a lib/pq key=value string. Values are quoted and the
// password is left out when empty.
func (c Config) PostgresDSN() string {
	pairs := []string{
		"host=" + dsnValue(c.DBHost),
		"port=" + dsnValue(c.DBPort),
		"user=" + dsnValue(c.DBUser),
	}
	if c.DBPassword != "" {
		pairs = append(pairs, "password="+dsnValue(c.DBPassword))
	}
	pairs = append(pairs, "dbname="+dsnValue(c.DBName), "sslmode=disable")
	return strings.Join(pairs, " ")
}

func dsnValue(v string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(v) + "'"
}

func (c Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func MustInitPostgres(c Config) *sql.DB {
	db, err := sql.Open("postgres", c.PostgresDSN())
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	if err = db.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to ping database")
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(c Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: c.RedisAddr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.WithError(err).Fatal("failed to connect to redis")
	}

	return client
}

// NewKafkaWriter returns nil when no broker is configured. Messages are
// partitioned by key.
func NewKafkaWriter(c Config) *kafka.Writer {
	if c.KafkaBroker == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(c.KafkaBroker),
		Topic:                  c.KafkaOrdersTopic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
