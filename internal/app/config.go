package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/freightdesk/fleetadmin/internal/clients/redis"
	"github.com/freightdesk/fleetadmin/internal/codegen"
	"github.com/freightdesk/fleetadmin/internal/data/db"
	"github.com/freightdesk/fleetadmin/internal/observability"
	"github.com/freightdesk/fleetadmin/internal/pkg/envutil"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
)

const defaultJWTSecret = "defaultsecret"

type Config struct {
	Env     string
	Port    string
	LogMode string

	JWTSecretKey    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	DB    db.Config
	Redis redis.Config

	CodeMaxAttempts int
	DefaultCountry  string
	AllowedOrigins  []string

	Tracing observability.TracingConfig
}

// fileConfig is the YAML shape read from CONFIG_FILE. Zero values leave the
// defaults untouched.
type fileConfig struct {
	Env     string `yaml:"env"`
	Port    string `yaml:"port"`
	LogMode string `yaml:"log_mode"`

	JWTSecretKey           string `yaml:"jwt_secret_key"`
	AccessTokenTTLSeconds  int    `yaml:"access_token_ttl"`
	RefreshTokenTTLSeconds int    `yaml:"refresh_token_ttl"`

	Database struct {
		Driver     string `yaml:"driver"`
		Host       string `yaml:"host"`
		Port       string `yaml:"port"`
		User       string `yaml:"user"`
		Password   string `yaml:"password"`
		Name       string `yaml:"name"`
		SSLMode    string `yaml:"sslmode"`
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`

	Redis struct {
		Addr                  string `yaml:"addr"`
		Password              string `yaml:"password"`
		DB                    int    `yaml:"db"`
		ReservationTTLSeconds int    `yaml:"reservation_ttl"`
	} `yaml:"redis"`

	CodeMaxAttempts int      `yaml:"code_max_attempts"`
	DefaultCountry  string   `yaml:"default_country"`
	AllowedOrigins  []string `yaml:"cors_allowed_origins"`

	Tracing struct {
		Enabled     *bool    `yaml:"enabled"`
		Endpoint    string   `yaml:"endpoint"`
		SampleRatio *float64 `yaml:"sample_ratio"`
	} `yaml:"tracing"`
}

func defaultConfig() Config {
	return Config{
		Env:             "development",
		Port:            "8080",
		LogMode:         "development",
		JWTSecretKey:    defaultJWTSecret,
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 24 * time.Hour,
		DB: db.Config{
			Driver:          db.DriverPostgres,
			PostgresHost:    "localhost",
			PostgresPort:    "5432",
			PostgresUser:    "postgres",
			PostgresName:    "fleetadmin",
			PostgresSSLMode: "disable",
			SQLitePath:      "fleetadmin.db",
			SlowQuery:       200 * time.Millisecond,
		},
		Redis:           redis.Config{TTL: 30 * time.Second},
		CodeMaxAttempts: codegen.DefaultMaxAttempts,
		DefaultCountry:  "India",
		Tracing: observability.TracingConfig{
			ServiceName: "fleetadmin",
			SampleRatio: 0.1,
		},
	}
}

// LoadConfig layers defaults, the optional CONFIG_FILE and the environment,
// in that order.
func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := defaultConfig()
	if path := envutil.String("CONFIG_FILE", ""); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return cfg, err
		}
		log.Info("config file loaded", "path", path)
	}
	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	if cfg.JWTSecretKey == defaultJWTSecret {
		log.Warn("JWT_SECRET_KEY not set; using development default")
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var f fileConfig
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&c.Env, f.Env)
	setString(&c.Port, f.Port)
	setString(&c.LogMode, f.LogMode)
	setString(&c.JWTSecretKey, f.JWTSecretKey)
	setSeconds(&c.AccessTokenTTL, f.AccessTokenTTLSeconds)
	setSeconds(&c.RefreshTokenTTL, f.RefreshTokenTTLSeconds)

	setString(&c.DB.Driver, f.Database.Driver)
	setString(&c.DB.PostgresHost, f.Database.Host)
	setString(&c.DB.PostgresPort, f.Database.Port)
	setString(&c.DB.PostgresUser, f.Database.User)
	setString(&c.DB.PostgresPassword, f.Database.Password)
	setString(&c.DB.PostgresName, f.Database.Name)
	setString(&c.DB.PostgresSSLMode, f.Database.SSLMode)
	setString(&c.DB.SQLitePath, f.Database.SQLitePath)

	setString(&c.Redis.Addr, f.Redis.Addr)
	setString(&c.Redis.Password, f.Redis.Password)
	if f.Redis.DB > 0 {
		c.Redis.DB = f.Redis.DB
	}
	setSeconds(&c.Redis.TTL, f.Redis.ReservationTTLSeconds)

	if f.CodeMaxAttempts > 0 {
		c.CodeMaxAttempts = f.CodeMaxAttempts
	}
	setString(&c.DefaultCountry, f.DefaultCountry)
	if len(f.AllowedOrigins) > 0 {
		c.AllowedOrigins = f.AllowedOrigins
	}

	if f.Tracing.Enabled != nil {
		c.Tracing.Enabled = *f.Tracing.Enabled
	}
	setString(&c.Tracing.Endpoint, f.Tracing.Endpoint)
	if f.Tracing.SampleRatio != nil {
		c.Tracing.SampleRatio = *f.Tracing.SampleRatio
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Env = envutil.String("APP_ENV", c.Env)
	c.Port = envutil.String("PORT", c.Port)
	c.LogMode = envutil.String("LOG_MODE", c.LogMode)

	c.JWTSecretKey = envutil.String("JWT_SECRET_KEY", c.JWTSecretKey)
	c.AccessTokenTTL = envutil.Seconds("ACCESS_TOKEN_TTL", c.AccessTokenTTL)
	c.RefreshTokenTTL = envutil.Seconds("REFRESH_TOKEN_TTL", c.RefreshTokenTTL)

	c.DB.Driver = strings.ToLower(envutil.String("DB_DRIVER", c.DB.Driver))
	c.DB.PostgresHost = envutil.String("POSTGRES_HOST", c.DB.PostgresHost)
	c.DB.PostgresPort = envutil.String("POSTGRES_PORT", c.DB.PostgresPort)
	c.DB.PostgresUser = envutil.String("POSTGRES_USER", c.DB.PostgresUser)
	c.DB.PostgresPassword = envutil.String("POSTGRES_PASSWORD", c.DB.PostgresPassword)
	c.DB.PostgresName = envutil.String("POSTGRES_NAME", c.DB.PostgresName)
	c.DB.PostgresSSLMode = envutil.String("POSTGRES_SSLMODE", c.DB.PostgresSSLMode)
	c.DB.SQLitePath = envutil.String("SQLITE_PATH", c.DB.SQLitePath)

	c.Redis.Addr = envutil.String("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = envutil.String("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = envutil.Int("REDIS_DB", c.Redis.DB)
	c.Redis.TTL = envutil.Seconds("CODE_RESERVATION_TTL", c.Redis.TTL)

	c.CodeMaxAttempts = envutil.Int("CODE_MAX_ATTEMPTS", c.CodeMaxAttempts)
	c.DefaultCountry = envutil.String("DEFAULT_COUNTRY", c.DefaultCountry)
	c.AllowedOrigins = envutil.List("CORS_ALLOWED_ORIGINS", c.AllowedOrigins)

	c.Tracing.Enabled = envutil.Bool("OTEL_ENABLED", c.Tracing.Enabled)
	c.Tracing.ServiceName = envutil.String("OTEL_SERVICE_NAME", c.Tracing.ServiceName)
	c.Tracing.Endpoint = envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", c.Tracing.Endpoint)
	c.Tracing.Insecure = envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", c.Tracing.Insecure)
	if h := envutil.String("OTEL_EXPORTER_OTLP_HEADERS", ""); h != "" {
		c.Tracing.Headers = observability.ParseHeaders(h)
	}
	if r := envutil.String("OTEL_SAMPLER_RATIO", ""); r != "" {
		if f, err := strconv.ParseFloat(r, 64); err == nil {
			c.Tracing.SampleRatio = f
		}
	}
	c.Tracing.Environment = c.Env
}

func (c Config) validate() error {
	switch c.DB.Driver {
	case db.DriverPostgres, db.DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	if c.Env == "production" && c.JWTSecretKey == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET_KEY must be set in production")
	}
	if c.AccessTokenTTL <= 0 || c.RefreshTokenTTL <= 0 {
		return fmt.Errorf("token TTLs must be positive")
	}
	return nil
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func setSeconds(dst *time.Duration, n int) {
	if n > 0 {
		*dst = time.Duration(n) * time.Second
	}
}
