package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Auth         AuthConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MC_APP_ENV" default:"dev"`
	Port         string `envconfig:"MC_APP_PORT" default:"5000"`
	LogLevel     string `envconfig:"MC_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MC_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	// Driver selects the gorm dialector: sqlite (default) or postgres.
	Driver string `envconfig:"MC_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"MC_DB_DSN"`

	SQLitePath string `envconfig:"MC_DB_SQLITE_PATH" default:"marketconnect.db"`

	MaxOpenConns    int           `envconfig:"MC_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MC_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MC_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MC_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	switch strings.ToLower(db.Driver) {
	case DriverSQLite:
		db.DSN = db.SQLitePath
		return nil
	case DriverPostgres:
		return fmt.Errorf("MC_DB_DSN is required when MC_DB_DRIVER=postgres")
	default:
		return fmt.Errorf("unsupported db driver %q", db.Driver)
	}
}

// RedisConfig is optional; when URL is empty, redis-backed features
// (order idempotency replay) are disabled.
type RedisConfig struct {
	URL          string        `envconfig:"MC_REDIS_URL"`
	Password     string        `envconfig:"MC_REDIS_PASSWORD"`
	DB           int           `envconfig:"MC_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MC_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MC_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MC_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MC_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MC_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != ""
}

// AuthConfig is optional; when Secret is empty the API runs open
// (classroom mode) and bearer tokens are not required.
type AuthConfig struct {
	Secret string `envconfig:"MC_AUTH_JWT_SECRET"`
	Issuer string `envconfig:"MC_AUTH_JWT_ISSUER" default:"marketconnect"`
}

func (a AuthConfig) Enabled() bool {
	return strings.TrimSpace(a.Secret) != ""
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"MC_AUTO_MIGRATE" default:"true"`
}
