package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

var (
	// ErrInvalidConfig конфигурация не прошла проверку
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	VendorService VendorServiceConfig `toml:"vendor_service"`
	Cache         CacheConfig         `toml:"cache"`
	RateLimit     RateLimitConfig     `toml:"rate_limit"`
	Engine        EngineConfig        `toml:"engine"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// VendorServiceConfig адрес каталога вендоров (услуги и расписание)
type VendorServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// CacheConfig кэш каталога в Redis; по умолчанию выключен
type CacheConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// TTL время жизни записи кэша
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
}

// EngineConfig настройки расчета доступности
type EngineConfig struct {
	// Timezone IANA зона, в которой задано расписание вендоров
	Timezone              string `toml:"timezone"`
	RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`
}

// Location разбирает часовой пояс движка
func (c EngineConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// RequestTimeout ограничение на чтение данных одного запроса
func (c EngineConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// Load читает конфигурацию из файла, применяет значения по умолчанию
// и переменные окружения, затем проверяет результат
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			ServiceName: "availability-service",
			Path:        "/metrics",
		},
		VendorService: VendorServiceConfig{
			Timeout: 5,
		},
		Cache: CacheConfig{
			Addr:       "localhost:6379",
			TTLSeconds: 60,
		},
		RateLimit: RateLimitConfig{
			RPS:   20,
			Burst: 40,
		},
		Engine: EngineConfig{
			Timezone:              "UTC",
			RequestTimeoutSeconds: 5,
		},
	}
}

// applyEnv переопределяет секреты и порт из окружения
func (c *Config) applyEnv() error {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Cache.Password = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT must be a number, got %q", ErrInvalidConfig, v)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if c.VendorService.URL == "" {
		return fmt.Errorf("%w: vendor_service.url is required", ErrInvalidConfig)
	}
	if c.Cache.Enabled && c.Cache.TTLSeconds <= 0 {
		return fmt.Errorf("%w: cache.ttl_seconds must be positive", ErrInvalidConfig)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit.rps and rate_limit.burst must be positive", ErrInvalidConfig)
	}
	if _, err := c.Engine.Location(); err != nil {
		return fmt.Errorf("%w: engine.timezone: %v", ErrInvalidConfig, err)
	}
	return nil
}
