package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Storage StorageConfig `toml:"storage"`
	Admin   AdminConfig   `toml:"admin"`
	Rooms   RoomsConfig   `toml:"rooms"`
	Slots   []SlotConfig  `toml:"slots"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig пути к файлам состояния
type StorageConfig struct {
	BookingsFile     string `toml:"bookings_file"`
	BlockedRoomsFile string `toml:"blocked_rooms_file"`
}

// AdminConfig административный доступ. Token — общий секрет,
// грубая проверка полномочий, а не граница безопасности.
type AdminConfig struct {
	Token string `toml:"token"`
}

// RoomsConfig каталог комнат
type RoomsConfig struct {
	IDs []string `toml:"ids"`
}

// SlotConfig один слот каталога; порядок в файле определяет порядок каталога
type SlotConfig struct {
	Name  string `toml:"name"`
	Range string `toml:"range"`
}

// Load читает и валидирует конфигурацию.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "room-booking-service",
		},
		Storage: StorageConfig{
			BookingsFile:     "bookings.json",
			BlockedRoomsFile: "blocked_classrooms.json",
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid http_port %d", c.Server.HTTPPort)
	}
	if c.Admin.Token == "" {
		return fmt.Errorf("config: admin token is required")
	}
	if c.Storage.BookingsFile == "" || c.Storage.BlockedRoomsFile == "" {
		return fmt.Errorf("config: storage file paths are required")
	}

	seen := map[string]struct{}{}
	for _, s := range c.Slots {
		if s.Name == "" {
			return fmt.Errorf("config: slot name must not be empty")
		}
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("config: duplicate slot %q", s.Name)
		}
		seen[s.Name] = struct{}{}
	}
	return nil
}

// RoomCatalog строит каталог комнат из конфигурации,
// пустой список заменяется дефолтным.
func (c *Config) RoomCatalog() *domain.RoomCatalog {
	rooms := c.Rooms.IDs
	if len(rooms) == 0 {
		rooms = domain.DefaultRooms()
	}
	return domain.NewRoomCatalog(rooms)
}

// SlotCatalog строит каталог слотов из конфигурации,
// пустой список заменяется дефолтным.
func (c *Config) SlotCatalog() *domain.TimeSlotCatalog {
	if len(c.Slots) == 0 {
		return domain.NewTimeSlotCatalog(domain.DefaultTimeSlots())
	}
	slots := make([]domain.TimeSlot, 0, len(c.Slots))
	for _, s := range c.Slots {
		slots = append(slots, domain.TimeSlot{Name: s.Name, Range: s.Range})
	}
	return domain.NewTimeSlotCatalog(slots)
}
