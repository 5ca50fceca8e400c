package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config is everything the server needs at startup.
type Config struct {
	HTTPAddr       string
	GinMode        string
	AllowedOrigins []string
	DB             DatabaseConfig
	Log            LogConfig
}

type DatabaseConfig struct {
	Driver       string // "pgx" (default) or "pq"
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	TimeZone     string
	MaxOpenConns int
}

type LogConfig struct {
	File   string
	Level  string
	Stdout bool
}

// DSN builds a libpq keyword/value connection string, understood by both pgx
// and lib/pq.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode, d.TimeZone,
	)
}

// SetDefaults registers every key with its default so that AutomaticEnv can
// resolve it and flags can be bound against it.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("http_addr", "0.0.0.0:8080")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("cors_allowed_origins", "")

	v.SetDefault("db_driver", "pgx")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "password")
	v.SetDefault("db_name", "portal")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("db_timezone", "UTC")
	v.SetDefault("db_max_open_conns", 10)

	v.SetDefault("log_file", "./logs/app.log")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_stdout", false)
}

// Load reads .env (if present) into the process environment and resolves the
// configuration through viper, so flags bound on v win over env vars.
func Load(v *viper.Viper) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, relying on env vars")
	}

	SetDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		HTTPAddr:       v.GetString("http_addr"),
		GinMode:        v.GetString("gin_mode"),
		AllowedOrigins: splitList(v.GetString("cors_allowed_origins")),
		DB: DatabaseConfig{
			Driver:       strings.ToLower(v.GetString("db_driver")),
			Host:         v.GetString("db_host"),
			Port:         v.GetString("db_port"),
			User:         v.GetString("db_user"),
			Password:     v.GetString("db_password"),
			Name:         v.GetString("db_name"),
			SSLMode:      v.GetString("db_sslmode"),
			TimeZone:     v.GetString("db_timezone"),
			MaxOpenConns: v.GetInt("db_max_open_conns"),
		},
		Log: LogConfig{
			File:   v.GetString("log_file"),
			Level:  v.GetString("log_level"),
			Stdout: v.GetBool("log_stdout"),
		},
	}

	switch cfg.DB.Driver {
	case "pgx", "pq":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want pgx or pq)", cfg.DB.Driver)
	}
	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
