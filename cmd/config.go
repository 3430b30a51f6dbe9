package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string

	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	// KafkaBrokers is a comma-separated broker list. Notifications are only
	// logged when it is empty.
	KafkaBrokers     string
	KafkaTopicPrefix string

	RelaySchedule  string
	RelayBatchSize int

	MetricsNamespace string

	// StatusConfigFiles is a comma-separated list of YAML registry contributions
	// merged, in order, over the built-in vocabulary.
	StatusConfigFiles string
	RuleTieBreak      string

	LogLevel string
}

// LoadConfig reads the environment, after loading the nearest .env file if there is one.
func LoadConfig() Config {
	loadDotEnv()

	return Config{
		HTTPPort: env.GetString("HTTP_PORT", "8080"),

		DBHost:            env.GetString("DB_HOST", "localhost"),
		DBPort:            env.GetString("DB_PORT", "5432"),
		DBUser:            env.GetString("DB_USER", "postgres"),
		DBPassword:        env.GetString("DB_PASSWORD", "postgres"),
		DBName:            env.GetString("DB_NAME", "shop"),
		DBSslMode:         env.GetString("DB_SSLMODE", "disable"),
		DBMaxOpenConns:    env.GetInt("DB_MAX_OPEN_CONNECTIONS", 25),
		DBMaxIdleConns:    env.GetInt("DB_MAX_IDLE_CONNECTIONS", 5),
		DBConnMaxLifetime: env.GetDuration("DB_CONN_MAX_LIFETIME_MINUTES", 5, time.Minute),

		KafkaBrokers:     env.GetString("KAFKA_BROKERS", ""),
		KafkaTopicPrefix: env.GetString("KAFKA_TOPIC_PREFIX", "shop."),

		RelaySchedule:  env.GetString("RELAY_SCHEDULE", "*/5 * * * * *"),
		RelayBatchSize: env.GetInt("RELAY_BATCH_SIZE", 100),

		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "shop"),

		StatusConfigFiles: env.GetString("STATUS_CONFIG_FILES", ""),
		RuleTieBreak:      env.GetString("RULE_TIE_BREAK", "last"),

		LogLevel: env.GetString("LOG_LEVEL", "info"),
	}
}

// DSN builds the Postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// StatusConfigPaths splits StatusConfigFiles, dropping blanks.
func (c Config) StatusConfigPaths() []string {
	paths := make([]string, 0)
	for _, p := range strings.Split(c.StatusConfigFiles, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// loadDotEnv loads the first .env found walking up from the working directory.
func loadDotEnv() {
	dir, err := os.Getwd()
	if err != nil {
		return
	}

	for {
		path := filepath.Join(dir, ".env")
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
