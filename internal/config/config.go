package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type HTTPCfg struct {
	Port            int           `env:"HTTP_PORT" envDefault:"3000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type APICfg struct {
	BaseURL        string        `env:"CRM_API_BASE_URL" envDefault:"http://localhost:5000/api"`
	RequestTimeout time.Duration `env:"CRM_API_REQUEST_TIMEOUT" envDefault:"10s"`
	Token          string        `env:"CRM_API_TOKEN"`
}

type SessionCfg struct {
	CookieName   string        `env:"SESSION_COOKIE_NAME" envDefault:"crm-session"`
	CookieSecure bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
	TimeToLive   time.Duration `env:"SESSION_TIME_TO_LIVE" envDefault:"12h"`
}

type RedisCfg struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// Enabled reports whether shared redis stores are configured, in-process stores are used otherwise
func (c RedisCfg) Enabled() bool {
	return c.Addr != ""
}

type CacheCfg struct {
	SizeBytes   int           `env:"CACHE_SIZE_BYTES" envDefault:"67108864"`
	TimeToLive  time.Duration `env:"CACHE_TIME_TO_LIVE" envDefault:"30m"`
	DemoOffline bool          `env:"OFFLINE_DEMO_FALLBACK" envDefault:"true"`
}

type LogCfg struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	JSON  bool   `env:"LOG_JSON" envDefault:"true"`
}

type Config struct {
	HTTPCfg    HTTPCfg
	APICfg     APICfg
	SessionCfg SessionCfg
	RedisCfg   RedisCfg
	CacheCfg   CacheCfg
	LogCfg     LogCfg
}

// Build reads configuration from environment, optional .env files are loaded first
// without overriding variables which are already set
func Build(dotenv ...string) (Config, error) {
	var cfg Config

	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("failed to load .env file - %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	if cfg.CacheCfg.SizeBytes <= 0 {
		return cfg, fmt.Errorf("CACHE_SIZE_BYTES must be positive, got %d", cfg.CacheCfg.SizeBytes)
	}
	if cfg.SessionCfg.TimeToLive <= 0 {
		return cfg, fmt.Errorf("SESSION_TIME_TO_LIVE must be positive, got %s", cfg.SessionCfg.TimeToLive)
	}
	return cfg, nil
}

// ConfigureLogger applies log level and format
func (c Config) ConfigureLogger() error {
	lvl, err := logrus.ParseLevel(c.LogCfg.Level)
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL - %w", err)
	}
	logrus.SetLevel(lvl)

	if c.LogCfg.JSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}
