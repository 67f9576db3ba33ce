package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Calendar CalendarConfig `toml:"calendar"`
}

// ServerConfig настройки HTTP сервера
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

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// CalendarConfig настройки календаря доступности.
// Выполняет роль settings-коллаборатора: количество юнитов, подпись типа,
// валюта, early-bird окно и цветовая палитра статусов.
type CalendarConfig struct {
	UnitCount         int     `toml:"unit_count"`
	UnitTypeLabel     string  `toml:"unit_type_label"`
	Currency          string  `toml:"currency"`
	EarlyBirdEnabled  bool    `toml:"early_bird_enabled"`
	EarlyBirdDays     int     `toml:"early_bird_days"`
	EarlyBirdPrice    float64 `toml:"early_bird_price"`
	MaxRangeDays      int     `toml:"max_range_days"`
	RosterScanEnabled bool    `toml:"roster_scan_fallback"`

	StatusColors map[string]string `toml:"status_colors"`
}

// EarlyBirdSettings возвращает параметры early-bird ценообразования
func (c *CalendarConfig) EarlyBirdSettings() (enabled bool, windowDays int, defaultPrice float64) {
	return c.EarlyBirdEnabled, c.EarlyBirdDays, c.EarlyBirdPrice
}

// CurrencyCode возвращает код валюты цен календаря
func (c *CalendarConfig) CurrencyCode() string {
	return c.Currency
}

// StatusColor возвращает цвет отображения статуса: сконфигурированный,
// иначе цвет по умолчанию
func (c *CalendarConfig) StatusColor(status domain.CellStatus) string {
	if color, ok := c.StatusColors[string(status)]; ok && color != "" {
		return color
	}
	return domain.DefaultStatusColors[status]
}

// Load загружает конфигурацию из TOML файла и применяет значения по умолчанию
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "smc-calendar-service"
	}
	if c.Calendar.UnitTypeLabel == "" {
		c.Calendar.UnitTypeLabel = domain.DefaultUnitTypeLabel
	}
	if c.Calendar.Currency == "" {
		c.Calendar.Currency = "EUR"
	}
	if c.Calendar.EarlyBirdDays == 0 {
		c.Calendar.EarlyBirdDays = domain.DefaultEarlyBirdDays
	}
	if c.Calendar.MaxRangeDays == 0 {
		c.Calendar.MaxRangeDays = domain.DefaultMaxRangeDays
	}
}

func (c *Config) validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if c.Calendar.UnitCount < domain.MinUnitCount || c.Calendar.UnitCount > domain.MaxUnitCount {
		return fmt.Errorf("config: calendar.unit_count must be between %d and %d",
			domain.MinUnitCount, domain.MaxUnitCount)
	}
	return nil
}
