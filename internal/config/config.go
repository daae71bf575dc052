package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/MC-AppointmentService/internal/domain"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не читается
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidWeekday возвращается при неизвестном названии дня недели
	ErrInvalidWeekday = errors.New("config: invalid weekday name")
)

// Config конфигурация сервиса, загружаемая из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
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
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig параметры логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig параметры Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// ScheduleConfig расписание процедурного кабинета
type ScheduleConfig struct {
	// Timezone часовой пояс кабинета (IANA, например "Europe/Moscow").
	// Все рабочие интервалы заданы в этом поясе
	Timezone string `toml:"timezone"`

	// SlotStepMinutes шаг сетки слотов в минутах
	SlotStepMinutes int `toml:"slot_step_minutes"`

	// AutoHorizonDays глубина автоподбора слота в днях
	AutoHorizonDays int `toml:"auto_horizon_days"`

	// Weekend выходные дни кабинета (названия на английском)
	Weekend []string `toml:"weekend"`

	// Blocks рабочие интервалы дня
	Blocks []BlockConfig `toml:"blocks"`
}

// BlockConfig границы рабочего интервала в формате "HH:MM"
type BlockConfig struct {
	Start string `toml:"start"`
	End   string `toml:"end"`
}

// Weekdays разбирает названия выходных дней в time.Weekday
func (c ScheduleConfig) Weekdays() ([]time.Weekday, error) {
	names := map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}

	result := make([]time.Weekday, 0, len(c.Weekend))
	for _, name := range c.Weekend {
		day, ok := names[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWeekday, name)
		}
		result = append(result, day)
	}

	return result, nil
}

// Load загружает конфигурацию: значения по умолчанию, затем config.toml,
// затем переменные окружения для секретов подключения к БД
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// defaultConfig возвращает конфигурацию по умолчанию.
// Расписание совпадает с эталонным: три рабочих интервала, шаг 5 минут,
// выходные суббота и воскресенье
func defaultConfig() *Config {
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
			User:            "postgres",
			Password:        "postgres",
			DBName:          "appointments",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			ServiceName: "mc-appointment-service",
			Path:        "/metrics",
		},
		Schedule: ScheduleConfig{
			Timezone:        domain.DefaultTimezone,
			SlotStepMinutes: domain.DefaultSlotStepMinutes,
			AutoHorizonDays: domain.DefaultAutoHorizonDays,
			Weekend:         []string{"saturday", "sunday"},
			Blocks: []BlockConfig{
				{Start: "08:30", End: "11:30"},
				{Start: "12:00", End: "14:00"},
				{Start: "15:00", End: "17:30"},
			},
		},
	}
}

// applyEnvOverrides перекрывает параметры подключения к БД переменными
// окружения. Секреты не хранятся в config.toml
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.Database.DBName = v
	}
	if v := os.Getenv("DB_SSLMODE"); v != "" {
		cfg.Database.SSLMode = v
	}
}
