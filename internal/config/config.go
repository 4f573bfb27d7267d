package config

import (
	"time"

	"github.com/spf13/viper"
)

type DatabaseDriver string

const (
	DriverSQLite DatabaseDriver = "sqlite"
	DriverMySQL  DatabaseDriver = "mysql"
)

type (
	Config struct {
		HTTP
		Database
		Auth
		Uploads
		Rentals
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}

	Database struct {
		Driver          DatabaseDriver
		Path            string // sqlite file path
		DSN             string // mysql DSN
		MaxOpenConns    int
		MaxIdleConns    int
		ConnMaxLifetime time.Duration
		ConnectAttempts int
		ConnectBackoff  time.Duration
	}

	Auth struct {
		JWTSecret   string
		TokenExpiry time.Duration
		BcryptCost  int
	}

	Uploads struct {
		Dir     string // local directory for photos and licenses
		BaseURL string // public URL prefix for stored files
	}

	Rentals struct {
		ConflictCheck bool   // reject overlapping rentals at creation
		SweepEnabled  bool   // background status reconciliation
		SweepSchedule string // cron format
	}

	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 3000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	// Database defaults
	v.SetDefault("database_driver", "sqlite")
	v.SetDefault("database_path", "./waveriders.db")
	v.SetDefault("database_dsn", "")
	v.SetDefault("database_max_open_conns", 10)
	v.SetDefault("database_max_idle_conns", 5)
	v.SetDefault("database_conn_max_lifetime", "30m")
	v.SetDefault("database_connect_attempts", 5)
	v.SetDefault("database_connect_backoff", "2s")

	// Auth defaults
	v.SetDefault("jwt_secret", "")
	v.SetDefault("token_expiry", "1h")
	v.SetDefault("bcrypt_cost", 10)

	// Upload defaults
	v.SetDefault("uploads_dir", "./uploads")
	v.SetDefault("uploads_base_url", "/uploads")

	// Rental defaults. Conflict checking is off to match the behavior
	// existing clients were built against; turn on to reject double-bookings.
	v.SetDefault("rental_conflict_check", false)
	v.SetDefault("rental_sweep_enabled", false)
	v.SetDefault("rental_sweep_schedule", "0 * * * *") // hourly

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Driver:          DatabaseDriver(v.GetString("DATABASE_DRIVER")),
			Path:            v.GetString("DATABASE_PATH"),
			DSN:             v.GetString("DATABASE_DSN"),
			MaxOpenConns:    v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DATABASE_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DATABASE_CONN_MAX_LIFETIME"),
			ConnectAttempts: v.GetInt("DATABASE_CONNECT_ATTEMPTS"),
			ConnectBackoff:  v.GetDuration("DATABASE_CONNECT_BACKOFF"),
		},
		Auth: Auth{
			JWTSecret:   v.GetString("JWT_SECRET"),
			TokenExpiry: v.GetDuration("TOKEN_EXPIRY"),
			BcryptCost:  v.GetInt("BCRYPT_COST"),
		},
		Uploads: Uploads{
			Dir:     v.GetString("UPLOADS_DIR"),
			BaseURL: v.GetString("UPLOADS_BASE_URL"),
		},
		Rentals: Rentals{
			ConflictCheck: v.GetBool("RENTAL_CONFLICT_CHECK"),
			SweepEnabled:  v.GetBool("RENTAL_SWEEP_ENABLED"),
			SweepSchedule: v.GetString("RENTAL_SWEEP_SCHEDULE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
