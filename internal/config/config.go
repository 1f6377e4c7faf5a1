package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	TomTom     TomTomConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Cache      CacheConfig
	RequestLog RequestLogConfig
	Log        LogConfig
	Worker     WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// TomTomConfig - настройки внешнего Routing API. DefaultKey используется только
// внешними вызывающими (HTTP, worker), когда ключ не передан в запросе.
type TomTomConfig struct {
	BaseURL        string
	RequestTimeout int
	DefaultKey     string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// CacheConfig - кеш результатов. По умолчанию выключен: при включении повторный
// одинаковый вызов в пределах RouteTTL не доходит до Routing API.
type CacheConfig struct {
	Enabled  bool
	RouteTTL time.Duration
}

// Active - кеш включён и TTL положительный
func (c CacheConfig) Active() bool {
	return c.Enabled && c.RouteTTL > 0
}

type RequestLogConfig struct {
	Enabled bool
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	ConsumerName      string
	StreamReadTimeout time.Duration
}

func Load() (*Config, error) {
	// .env необязателен, переменные окружения имеют приоритет
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		TomTom: TomTomConfig{
			BaseURL:        v.GetString("TOMTOM_BASE_URL"),
			RequestTimeout: v.GetInt("TOMTOM_REQUEST_TIMEOUT"),
			DefaultKey:     v.GetString("TOMTOM_API_KEY"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			Enabled:  v.GetBool("CACHE_ENABLED"),
			RouteTTL: time.Duration(v.GetInt("CACHE_ROUTE_TTL")) * time.Second,
		},
		RequestLog: RequestLogConfig{
			Enabled: v.GetBool("REQUEST_LOG_ENABLED"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:           v.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     v.GetString("WORKER_CONSUMER_GROUP"),
			ConsumerName:      v.GetString("WORKER_CONSUMER_NAME"),
			StreamReadTimeout: time.Duration(v.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "dev")

	v.SetDefault("TOMTOM_BASE_URL", "https://api.tomtom.com")
	v.SetDefault("TOMTOM_REQUEST_TIMEOUT", 30)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 1800)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 300)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)

	v.SetDefault("CACHE_ENABLED", false)
	v.SetDefault("CACHE_ROUTE_TTL", 60)

	v.SetDefault("REQUEST_LOG_ENABLED", false)

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("WORKER_ENABLED", true)
	v.SetDefault("WORKER_CONSUMER_GROUP", "routing-job-workers")
	v.SetDefault("WORKER_CONSUMER_NAME", "routing-worker-1")
	v.SetDefault("WORKER_STREAM_READ_TIMEOUT", 1000)
}

// Validate проверяет обязательные настройки
func (c *Config) Validate() error {
	if c.TomTom.BaseURL == "" {
		return fmt.Errorf("TOMTOM_BASE_URL is required")
	}
	if c.TomTom.RequestTimeout < 0 {
		return fmt.Errorf("TOMTOM_REQUEST_TIMEOUT must not be negative")
	}
	if c.Cache.RouteTTL < 0 {
		return fmt.Errorf("CACHE_ROUTE_TTL must not be negative")
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
