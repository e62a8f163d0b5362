package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// EnvPrefix префикс переменных окружения, переопределяющих config.toml
const EnvPrefix = "AGENDA"

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Storage    StorageConfig    `toml:"storage"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Slots      SlotsConfig      `toml:"slots"`
	Summarizer SummarizerConfig `toml:"summarizer"`
	Business   BusinessConfig   `toml:"business"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" split_words:"true"`
	ReadTimeout     int `toml:"read_timeout" split_words:"true"`
	WriteTimeout    int `toml:"write_timeout" split_words:"true"`
	IdleTimeout     int `toml:"idle_timeout" split_words:"true"`
	ShutdownTimeout int `toml:"shutdown_timeout" split_words:"true"`
}

// StorageConfig выбор хранилища
type StorageConfig struct {
	Driver    string `toml:"driver" split_words:"true"`
	TimeoutMs int    `toml:"timeout_ms" split_words:"true"`
}

// Timeout таймаут одного обращения к хранилищу
func (s StorageConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutMs) * time.Millisecond
}

// DatabaseConfig подключение к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" split_words:"true"`
	Port            int    `toml:"port" split_words:"true"`
	User            string `toml:"user" split_words:"true"`
	Password        string `toml:"password" split_words:"true"`
	DBName          string `toml:"dbname" split_words:"true"`
	SSLMode         string `toml:"sslmode" split_words:"true"`
	MaxOpenConns    int    `toml:"max_open_conns" split_words:"true"`
	MaxIdleConns    int    `toml:"max_idle_conns" split_words:"true"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" split_words:"true"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level" split_words:"true"`
	File  string `toml:"file" split_words:"true"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" split_words:"true"`
	Path        string `toml:"path" split_words:"true"`
	ServiceName string `toml:"service_name" split_words:"true"`
}

// SlotsConfig шаг сетки слотов
type SlotsConfig struct {
	StepMinutes int `toml:"step_minutes" split_words:"true"`
}

// SummarizerConfig клиент генерации текста. Пустой api_key отключает клиент.
type SummarizerConfig struct {
	BaseURL string `toml:"base_url" split_words:"true"`
	APIKey  string `toml:"api_key" split_words:"true"`
	Model   string `toml:"model" split_words:"true"`
	Timeout int    `toml:"timeout" split_words:"true"` // секунды
}

// BusinessConfig данные бизнеса и начальное наполнение каталога
type BusinessConfig struct {
	Name         string               `toml:"name" split_words:"true"`
	Slug         string               `toml:"slug" split_words:"true"`
	About        string               `toml:"about" split_words:"true"`
	Timezone     string               `toml:"timezone" split_words:"true"`
	WorkingHours []WorkingHoursConfig `toml:"working_hours" ignored:"true"`
	Services     []ServiceConfig      `toml:"services" ignored:"true"`
}

// WorkingHoursConfig рабочее окно дня недели (0 = воскресенье)
type WorkingHoursConfig struct {
	Weekday  int    `toml:"weekday"`
	Start    string `toml:"start"`
	End      string `toml:"end"`
	IsActive bool   `toml:"is_active"`
}

// ServiceConfig услуга для начального наполнения каталога
type ServiceConfig struct {
	ID              string  `toml:"id"`
	Name            string  `toml:"name"`
	DurationMinutes int     `toml:"duration_minutes"`
	Price           float64 `toml:"price"`
	Description     string  `toml:"description"`
	Category        string  `toml:"category"`
}

// Load читает config.toml и применяет переменные окружения AGENDA_*.
// Отсутствующий файл не является ошибкой: используются значения по умолчанию.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: failed to parse %s: %v", domain.ErrConfig, path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to read environment: %v", domain.ErrConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default значения по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Storage: StorageConfig{
			Driver:    StorageMemory,
			TimeoutMs: domain.DefaultStorageTimeoutMs,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "agenda",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "agenda-service",
		},
		Slots: SlotsConfig{
			StepMinutes: domain.DefaultSlotStepMinutes,
		},
		Summarizer: SummarizerConfig{
			Timeout: 15,
		},
		Business: BusinessConfig{
			Timezone: "America/Sao_Paulo",
		},
	}
}

// Validate проверяет конфигурацию. Все ошибки оборачивают domain.ErrConfig.
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d is out of range", domain.ErrConfig, c.Server.HTTPPort)
	}

	switch c.Storage.Driver {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", domain.ErrConfig, c.Storage.Driver)
	}
	if c.Storage.TimeoutMs <= 0 {
		return fmt.Errorf("%w: storage.timeout_ms must be positive", domain.ErrConfig)
	}

	if c.Slots.StepMinutes < domain.MinSlotStepMinutes || c.Slots.StepMinutes > domain.MaxSlotStepMinutes {
		return fmt.Errorf("%w: slots.step_minutes must be in %d..%d, got %d",
			domain.ErrConfig, domain.MinSlotStepMinutes, domain.MaxSlotStepMinutes, c.Slots.StepMinutes)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with /", domain.ErrConfig)
	}

	if strings.TrimSpace(c.Business.Name) == "" {
		return fmt.Errorf("%w: business.name is required", domain.ErrConfig)
	}
	if _, err := c.Business.Location(); err != nil {
		return err
	}
	if _, err := c.Business.Hours(); err != nil {
		return err
	}

	return nil
}

// Location часовой пояс бизнеса
func (b BusinessConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: business.timezone %q: %v", domain.ErrConfig, b.Timezone, err)
	}
	return loc, nil
}

// Hours переводит рабочие часы в доменные значения.
// Пересечения и дубликаты проверяет календарь.
func (b BusinessConfig) Hours() ([]domain.WorkingHours, error) {
	hours := make([]domain.WorkingHours, 0, len(b.WorkingHours))
	for i, wh := range b.WorkingHours {
		entry := domain.WorkingHours{
			Weekday:  time.Weekday(wh.Weekday),
			Start:    types.TimeString(strings.TrimSpace(wh.Start)),
			End:      types.TimeString(strings.TrimSpace(wh.End)),
			IsActive: wh.IsActive,
		}
		if err := entry.Validate(); err != nil {
			return nil, fmt.Errorf("business.working_hours[%d]: %w", i, err)
		}
		hours = append(hours, entry)
	}
	return hours, nil
}

// Info данные бизнеса для публичной страницы
func (b BusinessConfig) Info() (domain.BusinessInfo, error) {
	hours, err := b.Hours()
	if err != nil {
		return domain.BusinessInfo{}, err
	}
	return domain.BusinessInfo{
		Name:         b.Name,
		Slug:         b.Slug,
		About:        b.About,
		Timezone:     b.Timezone,
		WorkingHours: hours,
	}, nil
}
