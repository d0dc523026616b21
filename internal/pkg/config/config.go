package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Region     RegionConfig
	Downstream DownstreamConfig
	AMQP       AMQPConfig
	RateLimit  RateLimitConfig
}

const (
	ServiceUsers     = "users"
	ServiceCompanies = "companies"
	ServiceOperator  = "operator"
)

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	// Route groups mounted by this process; one binary serves any subset of the three services.
	Services       []string `envconfig:"SERVICES" default:"users,companies,operator"`
	MigrateOnStart bool     `envconfig:"MIGRATE_ON_START" default:"false"`
	// Peers whose X-Forwarded-For is believed. The registration saga calls the users service
	// through one of these so each end user keeps their own rate-limit bucket.
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES" default:"127.0.0.1,::1"`
}

func (s ServerConfig) Serves(name string) bool {
	for _, svc := range s.Services {
		if strings.EqualFold(strings.TrimSpace(svc), name) {
			return true
		}
	}
	return false
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Moscow"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Moscow"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"10800"` // 3*60*60
}

type JWTConfig struct {
	Secret string        `envconfig:"JWT_SECRET" required:"true"`
	TTL    time.Duration `envconfig:"JWT_TTL" default:"1h"`
}

// RegionConfig holds the business rule that decides which companies belong to the served region.
type RegionConfig struct {
	INNPrefix         string        `envconfig:"REGION_INN_PREFIX" default:"52"`
	Name              string        `envconfig:"REGION_NAME" default:"Нижегородская область"`
	NewCompaniesSince time.Duration `envconfig:"REGISTRY_NEW_WINDOW" default:"720h"`
}

type DownstreamConfig struct {
	UsersURL     string        `envconfig:"USERS_SERVICE_URL" default:"http://localhost:8001"`
	CompaniesURL string        `envconfig:"COMPANIES_SERVICE_URL" default:"http://localhost:8003"`
	Timeout      time.Duration `envconfig:"DOWNSTREAM_TIMEOUT" default:"10s"`
}

type AMQPConfig struct {
	URL      string `envconfig:"AMQP_URL"`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"marketplace.events"`
}

func (c AMQPConfig) Enabled() bool {
	return c.URL != ""
}

type RateLimitConfig struct {
	RPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"5"`
	Burst int     `envconfig:"RATE_LIMIT_BURST" default:"10"`
	// buckets untouched for this long are dropped
	IdleTTL time.Duration `envconfig:"RATE_LIMIT_IDLE_TTL" default:"10m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.JWT.Secret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET must not be empty")
	}
	if cfg.JWT.TTL <= 0 {
		return Config{}, fmt.Errorf("JWT_TTL must be positive, got %s", cfg.JWT.TTL)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:           "8889", // Test port
			Services:       []string{ServiceUsers, ServiceCompanies, ServiceOperator},
			TrustedProxies: []string{"127.0.0.1", "::1"},
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Moscow",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Moscow",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 10800,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
			TTL:    time.Hour,
		},
		Region: RegionConfig{
			INNPrefix:         "52",
			Name:              "Нижегородская область",
			NewCompaniesSince: 30 * 24 * time.Hour,
		},
		Downstream: DownstreamConfig{
			Timeout: 5 * time.Second,
		},
		RateLimit: RateLimitConfig{
			RPS:     1000,
			Burst:   1000,
			IdleTTL: 10 * time.Minute,
		},
	}
}
