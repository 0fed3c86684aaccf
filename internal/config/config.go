package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/BurntSushi/toml"

	"github.com/jneves25/barber-service/internal/domain"
	"github.com/jneves25/barber-service/pkg/logger"
)

// ErrInvalidConfig возвращается, если конфигурация не прошла проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig               `toml:"server"`
	Database       DatabaseConfig             `toml:"database"`
	Logs           LogsConfig                 `toml:"logs"`
	Metrics        MetricsConfig              `toml:"metrics"`
	CatalogService IntegrationConfig          `toml:"catalog_service"`
	Schedule       ScheduleConfig             `toml:"schedule"`
	Permissions    map[string]RolePermissions `toml:"permissions"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к Postgres
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования. Пустой File означает stdout
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// IntegrationConfig настройки внешнего HTTP сервиса
type IntegrationConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// ScheduleConfig расписание салона
type ScheduleConfig struct {
	OpenHour       int `toml:"open_hour"`
	CloseHour      int `toml:"close_hour"`
	StepMinutes    int `toml:"step_minutes"`
	MaxAdvanceDays int `toml:"max_advance_days"`
}

// WorkingHours возвращает рабочие часы в доменной модели
func (s ScheduleConfig) WorkingHours() domain.WorkingHours {
	return domain.WorkingHours{OpenHour: s.OpenHour, CloseHour: s.CloseHour}
}

// RolePermissions права роли, секция [permissions.<role>]
type RolePermissions struct {
	Grants []string `toml:"grants"`
}

// PermissionTable возвращает таблицу role -> права
func (c *Config) PermissionTable() map[string][]string {
	table := make(map[string][]string, len(c.Permissions))
	for role, perms := range c.Permissions {
		table[role] = perms.Grants
	}
	return table
}

// Load читает конфигурацию из toml-файла, подставляет значения по умолчанию и проверяет её
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
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
			Path:        "/metrics",
			ServiceName: "barber-service",
		},
		CatalogService: IntegrationConfig{
			Timeout: 5,
		},
		Schedule: ScheduleConfig{
			OpenHour:       domain.DefaultOpenHour,
			CloseHour:      domain.DefaultCloseHour,
			StepMinutes:    domain.DefaultSlotStepMinutes,
			MaxAdvanceDays: domain.DefaultMaxAdvanceDays,
		},
	}
}

// Validate проверяет обязательные поля и диапазоны
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("%w: database.host, database.dbname and database.user are required", ErrInvalidConfig)
	}

	if _, err := logger.ParseLevel(c.Logs.Level); err != nil {
		return fmt.Errorf("%w: logs.level: %v", ErrInvalidConfig, err)
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}

	if _, err := url.ParseRequestURI(c.CatalogService.URL); err != nil {
		return fmt.Errorf("%w: catalog_service.url: %v", ErrInvalidConfig, err)
	}
	if c.CatalogService.Timeout <= 0 {
		return fmt.Errorf("%w: catalog_service.timeout must be positive", ErrInvalidConfig)
	}

	if !c.Schedule.WorkingHours().IsValid() {
		return fmt.Errorf("%w: schedule hours must satisfy 0 <= open_hour < close_hour <= 24", ErrInvalidConfig)
	}
	if c.Schedule.StepMinutes < domain.MinSlotStepMinutes || c.Schedule.StepMinutes > domain.MaxSlotStepMinutes {
		return fmt.Errorf("%w: schedule.step_minutes must be in %d..%d",
			ErrInvalidConfig, domain.MinSlotStepMinutes, domain.MaxSlotStepMinutes)
	}
	if c.Schedule.MaxAdvanceDays < 0 {
		return fmt.Errorf("%w: schedule.max_advance_days must not be negative", ErrInvalidConfig)
	}

	return nil
}
