package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	pkglogger "github.com/damoang/angple-forum/pkg/logger"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var configValidator = validator.New()

// Config application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port int    `yaml:"port" validate:"min=1,max=65535"`
	Mode string `yaml:"mode" validate:"oneof=debug release test"`
	Env  string `yaml:"env"`
}

// DatabaseConfig record store settings. Driver "none" serves the literal seed lists.
type DatabaseConfig struct {
	Driver          string `yaml:"driver" validate:"oneof=none mysql sqlite"`
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	User            string `yaml:"user"`
	Password        string `yaml:"password"`
	DBName          string `yaml:"dbname"`
	Path            string `yaml:"path"`
	MaxIdleConns    int    `yaml:"max_idle_conns" validate:"min=0"`
	MaxOpenConns    int    `yaml:"max_open_conns" validate:"min=0"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" validate:"min=0"`
}

// RedisConfig record cache settings
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db" validate:"min=0"`
	PoolSize int    `yaml:"pool_size" validate:"min=0"`
}

// CORSConfig allowed origins, comma separated
type CORSConfig struct {
	AllowOrigins string `yaml:"allow_origins"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080, Mode: "debug", Env: "local"},
		Database: DatabaseConfig{
			Driver:          "none",
			Host:            "localhost",
			Port:            3306,
			Path:            "forum.db",
			MaxIdleConns:    5,
			MaxOpenConns:    20,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{Host: "localhost", Port: 6379, PoolSize: 10},
		CORS:  CORSConfig{AllowOrigins: "http://localhost:3000"},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := configValidator.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	envString("APP_ENV", &cfg.Server.Env)
	envInt("SERVER_PORT", &cfg.Server.Port)
	envString("GIN_MODE", &cfg.Server.Mode)

	envString("DB_DRIVER", &cfg.Database.Driver)
	envString("DB_HOST", &cfg.Database.Host)
	envInt("DB_PORT", &cfg.Database.Port)
	envString("DB_USER", &cfg.Database.User)
	envString("DB_PASSWORD", &cfg.Database.Password)
	envString("DB_NAME", &cfg.Database.DBName)
	envString("DB_PATH", &cfg.Database.Path)

	if v, ok := os.LookupEnv("REDIS_ENABLED"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Redis.Enabled = b
		}
	}
	envString("REDIS_HOST", &cfg.Redis.Host)
	envInt("REDIS_PORT", &cfg.Redis.Port)
	envString("REDIS_PASSWORD", &cfg.Redis.Password)

	envString("CORS_ALLOW_ORIGINS", &cfg.CORS.AllowOrigins)
}

func envString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// IsDevelopment reports whether the server runs in a local/dev environment
func (c *Config) IsDevelopment() bool {
	switch c.Server.Env {
	case "", "local", "dev", "development":
		return true
	}
	return false
}

// GetDSN returns the MySQL DSN
func (d DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User, d.Password, d.Host, d.Port, d.DBName)
}

// AllowOriginList splits AllowOrigins on commas
func (c CORSConfig) AllowOriginList() []string {
	var out []string
	for _, s := range strings.Split(c.AllowOrigins, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// LogResolved logs the effective configuration without secrets
func LogResolved(cfg *Config) {
	pkglogger.GetLogger().Info().
		Str("env", cfg.Server.Env).
		Int("port", cfg.Server.Port).
		Str("gin_mode", cfg.Server.Mode).
		Str("db_driver", cfg.Database.Driver).
		Str("db_host", cfg.Database.Host).
		Bool("redis_enabled", cfg.Redis.Enabled).
		Str("cors", cfg.CORS.AllowOrigins).
		Msg("config resolved")
}
