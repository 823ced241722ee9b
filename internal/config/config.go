package config

import (
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Store drivers accepted by STORE_DRIVER.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverRedis    = "redis"
	DriverBolt     = "bolt"
)

type Config struct {
	Host string
	Port string

	StoreDriver string

	// SQLite
	DBPath string

	// PostgreSQL
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	MySQLDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	BoltPath string

	NatsURL           string
	NatsSubjectPrefix string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file")
	}

	return &Config{
		Host:              getEnv("HOST", "0.0.0.0"),
		Port:              getEnv("PORT", "8001"),
		StoreDriver:       strings.ToLower(getEnv("STORE_DRIVER", DriverMemory)),
		DBPath:            getEnv("DB_PATH", "./guru_mess.db"),
		DBHost:            getEnv("DB_HOST", ""),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", ""),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBName:            getEnv("DB_NAME", ""),
		DBSSLMode:         getEnv("DB_SSLMODE", "disable"),
		MySQLDSN:          getEnv("MYSQL_DSN", ""),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		BoltPath:          getEnv("BOLT_PATH", "./guru_mess.bolt"),
		NatsURL:           getEnv("NATS_URL", ""),
		NatsSubjectPrefix: getEnv("NATS_SUBJECT_PREFIX", "guru_mess.submissions"),
	}
}

// Validate checks that the selected store driver is known and that the
// settings it depends on are present.
func (c *Config) Validate() error {
	var missing []string

	switch c.StoreDriver {
	case DriverMemory:
	case DriverSQLite:
		if c.DBPath == "" {
			missing = append(missing, "DB_PATH")
		}
	case DriverPostgres:
		if c.DBHost == "" {
			missing = append(missing, "DB_HOST")
		}
		if c.DBUser == "" {
			missing = append(missing, "DB_USER")
		}
		if c.DBName == "" {
			missing = append(missing, "DB_NAME")
		}
	case DriverMySQL:
		if c.MySQLDSN == "" {
			missing = append(missing, "MYSQL_DSN")
		}
	case DriverRedis:
		if c.RedisAddr == "" {
			missing = append(missing, "REDIS_ADDR")
		}
	case DriverBolt:
		if c.BoltPath == "" {
			missing = append(missing, "BOLT_PATH")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables for %s store: %s",
			c.StoreDriver, strings.Join(missing, ", "))
	}

	if c.NatsURL == "" {
		log.Println("Warning: NATS_URL is not set, submissions will only be traced to the log")
	}

	return nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// GetDSN returns the PostgreSQL connection string.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}
