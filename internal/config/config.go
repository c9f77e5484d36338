package config

import (
	"errors"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string
	LogLevel   string
	ListenAddr string
	AuthToken  string

	StorageBackend string // file, redis or postgres
	DataDir        string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	PostgresDSN    string

	Notifier    string // log or sns
	SNSRegion   string
	SNSTopicARN string
}

var (
	cfg  *Config
	once sync.Once
)

func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()
		cfg = &Config{
			Env:            getEnv("APP_ENV", "development"),
			LogLevel:       getEnv("LOG_LEVEL", "info"),
			ListenAddr:     getEnv("LISTEN_ADDR", ":8088"),
			AuthToken:      getEnv("AUTH_TOKEN", ""),
			StorageBackend: getEnv("STORAGE_BACKEND", "file"),
			DataDir:        getEnv("DATA_DIR", "data"),
			RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword:  getEnv("REDIS_PASSWORD", ""),
			RedisDB:        getEnvInt("REDIS_DB", 0),
			PostgresDSN:    getEnv("POSTGRES_DSN", ""),
			Notifier:       getEnv("NOTIFIER", "log"),
			SNSRegion:      getEnv("SNS_REGION", "us-east-1"),
			SNSTopicARN:    getEnv("SNS_TOPIC_ARN", ""),
		}
		if err := cfg.Validate(); err != nil {
			panic("Invalid config: " + err.Error())
		}
	})
	return cfg
}

func (c *Config) Validate() error {
	switch c.StorageBackend {
	case "file":
		if c.DataDir == "" {
			return errors.New("DATA_DIR is required when STORAGE_BACKEND=file")
		}
	case "redis":
		if c.RedisAddr == "" {
			return errors.New("REDIS_ADDR is required when STORAGE_BACKEND=redis")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
		}
	default:
		return errors.New("STORAGE_BACKEND must be one of: file, redis, postgres")
	}
	switch c.Notifier {
	case "log":
	case "sns":
		if c.SNSTopicARN == "" {
			return errors.New("SNS_TOPIC_ARN is required when NOTIFIER=sns")
		}
	default:
		return errors.New("NOTIFIER must be one of: log, sns")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
