package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/holidaze/booking-gateway/internal/domain"
	"github.com/holidaze/booking-gateway/pkg/ptr"
)

// Config конфигурация приложения
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Holidaze HolidazeConfig `toml:"holidaze"`
	Cache    CacheConfig    `toml:"cache"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// HolidazeConfig настройки клиента внешнего Holidaze API
type HolidazeConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// CacheConfig настройки кеша занятых дней
type CacheConfig struct {
	Backend    string `toml:"backend"`     // "memory" или "redis"
	TTLSeconds int    `toml:"ttl_seconds"` // время жизни записи
	RedisAddr  string `toml:"redis_addr"`
	RedisDB    int    `toml:"redis_db"`
}

// BookingConfig бизнес-настройки бронирования
type BookingConfig struct {
	// Плата за каждого гостя сверх первого, за всё проживание.
	// Указатель различает "не задано" (применяется дефолт) и явный ноль
	ExtraGuestFee *float64 `toml:"extra_guest_fee"`
}

// Load загружает конфигурацию из TOML файла
// Переменные окружения (в том числе из .env, если он есть) перекрывают файл
func Load(path string) (*Config, error) {
	// .env опционален, его отсутствие не является ошибкой
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults подставляет дефолты для незаданных значений
func applyDefaults(cfg *Config) {
	if cfg.Booking.ExtraGuestFee == nil {
		cfg.Booking.ExtraGuestFee = ptr.Ptr(float64(domain.DefaultExtraGuestFee))
	}
}

// applyEnvOverrides перекрывает значения из файла переменными окружения
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.HTTPPort = port
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logs.Level = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.Logs.File = v
	}
	if v := os.Getenv("HOLIDAZE_URL"); v != "" {
		cfg.Holidaze.URL = v
	}
	if v := os.Getenv("CACHE_BACKEND"); v != "" {
		cfg.Cache.Backend = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Cache.RedisAddr = v
	}
	if v := os.Getenv("EXTRA_GUEST_FEE"); v != "" {
		if fee, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Booking.ExtraGuestFee = ptr.Ptr(fee)
		}
	}
}

// validate проверяет обязательные поля конфигурации
func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive, got %d", c.Server.HTTPPort)
	}
	if c.Holidaze.URL == "" {
		return fmt.Errorf("config: holidaze.url is required")
	}
	switch c.Cache.Backend {
	case "", "memory", "redis":
	default:
		return fmt.Errorf("config: unknown cache.backend %q, expected \"memory\" or \"redis\"", c.Cache.Backend)
	}
	if c.Cache.Backend == "redis" && c.Cache.RedisAddr == "" {
		return fmt.Errorf("config: cache.redis_addr is required when cache.backend is \"redis\"")
	}
	if c.Booking.ExtraGuestFee != nil && *c.Booking.ExtraGuestFee < 0 {
		return fmt.Errorf("config: booking.extra_guest_fee cannot be negative")
	}
	return nil
}
