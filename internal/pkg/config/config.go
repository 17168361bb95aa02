package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, backend URL, secrets)
// - default: Values common across all environments (timeouts, TTLs, log format)
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	API          APIConfig
	Session      SessionConfig
	Cookie       CookieConfig
	Notification NotificationConfig
	CORS         CORSConfig
	Log          LogConfig
	RateLimit    RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// APIConfig points at the remote booking backend.
type APIConfig struct {
	BaseURL string        `envconfig:"API_BASE_URL"`
	Timeout time.Duration `envconfig:"API_TIMEOUT" default:"10s"`
	UseMock bool          `envconfig:"API_USE_MOCK" default:"false"`
}

type SessionConfig struct {
	Secret      string        `envconfig:"SESSION_SECRET" required:"true"`
	Duration    time.Duration `envconfig:"SESSION_DURATION" default:"24h"`
	IdleTimeout time.Duration `envconfig:"SESSION_IDLE_TIMEOUT" default:"2h"`
	SweepEvery  time.Duration `envconfig:"SESSION_SWEEP_INTERVAL" default:"5m"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type NotificationConfig struct {
	TTL time.Duration `envconfig:"NOTIFICATION_TTL" default:"5s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type RateLimitConfig struct {
	RPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"10"`
	Burst int     `envconfig:"RATE_LIMIT_BURST" default:"20"`
}

func (c APIConfig) Validate() error {
	if !c.UseMock && c.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required when API_USE_MOCK is false")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be positive, got %s", c.Timeout)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.API.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		API: APIConfig{
			BaseURL: "http://localhost:18080",
			Timeout: 10 * time.Second,
			UseMock: true,
		},
		Session: SessionConfig{
			Secret:      "test-session-secret",
			Duration:    time.Hour,
			IdleTimeout: time.Hour,
			SweepEvery:  time.Minute,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Notification: NotificationConfig{
			TTL: 5 * time.Second,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		RateLimit: RateLimitConfig{
			RPS:   1000,
			Burst: 1000,
		},
	}
}
