package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

type Config struct {
	Environment     string        `mapstructure:"ENV"`
	TelegramToken   string        `mapstructure:"TELEGRAM_TOKEN"`
	OwnerTelegramID int64         `mapstructure:"OWNER_TELEGRAM_ID"`
	StorageBackend  string        `mapstructure:"STORAGE_BACKEND"`
	DataDir         string        `mapstructure:"DATA_DIR"`
	DBDSN           string        `mapstructure:"DB_DSN"`
	RedisAddr       string        `mapstructure:"REDIS_ADDR"`
	RedisPassword   string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB         int           `mapstructure:"REDIS_DB"`
	AIProvider      string        `mapstructure:"AI_PROVIDER"`
	APIKey          string        `mapstructure:"API_KEY"`
	AIModel         string        `mapstructure:"AI_MODEL"`
	BackupInterval  time.Duration `mapstructure:"BACKUP_INTERVAL"`
}

var keys = []string{
	"ENV", "TELEGRAM_TOKEN", "OWNER_TELEGRAM_ID", "STORAGE_BACKEND", "DATA_DIR",
	"DB_DSN", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"AI_PROVIDER", "API_KEY", "AI_MODEL", "BACKUP_INTERVAL",
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("ENV", "development")
	v.SetDefault("STORAGE_BACKEND", StorageFile)
	v.SetDefault("DATA_DIR", "data")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("AI_PROVIDER", "groq")
	v.SetDefault("BACKUP_INTERVAL", 24*time.Hour)

	// AutomaticEnv не видит ключи без default, поэтому привязываем все явно
	for _, key := range keys {
		_ = v.BindEnv(key)
	}
	v.AutomaticEnv()

	return v
}

// FromViper собирает и проверяет конфиг из уже настроенного viper
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.StorageBackend = strings.ToLower(strings.TrimSpace(cfg.StorageBackend))
	cfg.AIProvider = strings.ToLower(strings.TrimSpace(cfg.AIProvider))

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageBackend {
	case StorageFile:
		if c.DataDir == "" {
			return errors.New("DATA_DIR is required for file storage")
		}
	case StoragePostgres:
		if c.DBDSN == "" {
			return errors.New("DB_DSN is required for postgres storage")
		}
	case StorageRedis:
		if c.RedisAddr == "" {
			return errors.New("REDIS_ADDR is required for redis storage")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}

	switch c.AIProvider {
	case "groq", "gemini":
	default:
		return fmt.Errorf("unknown AI_PROVIDER %q", c.AIProvider)
	}

	if c.BackupInterval < 0 {
		return errors.New("BACKUP_INTERVAL must not be negative")
	}

	return nil
}

// RequireBot проверяет поля, нужные только боту
func (c *Config) RequireBot() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}
	return nil
}

// IsProduction включает production-логгер; регистр ENV не важен
func (c *Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.Environment), "production")
}
