package config

import (
	"errors"
	"os"
)

const DEV_ENV = "dev"
const PRO_ENV = "pro"

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Environment   string
	JWTSecret     string
	DBDriver      string
	DBURL         string
	Addr          string
	EnableSignup  bool
	WhitelistHost string
	TLSCacheDir   string
}

// Load reads the configuration from the environment and fills in defaults.
func Load() (*Config, error) {
	cfg := FromEnv()
	if err := cfg.ApplyDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.RequireSecret(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func FromEnv() *Config {
	return &Config{
		Environment:   os.Getenv("ENV"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		DBDriver:      os.Getenv("DB_DRIVER"),
		DBURL:         os.Getenv("DB_URL"),
		Addr:          os.Getenv("ADDRESS_LISTEN"),
		EnableSignup:  os.Getenv("ENABLE_SIGNUP") == "true",
		WhitelistHost: os.Getenv("WHITELIST_HOST"),
		TLSCacheDir:   os.Getenv("TLS_CACHE_DIR"),
	}
}

// ApplyDefaults fills unset fields and rejects unusable combinations.
func (c *Config) ApplyDefaults() error {
	if c.Environment == "" {
		c.Environment = PRO_ENV
	}
	if c.JWTSecret == "" && c.IsDev() {
		c.JWTSecret = "unsecure"
	}
	if c.DBDriver == "" {
		c.DBDriver = DriverSQLite
	}
	switch c.DBDriver {
	case DriverSQLite:
		if c.DBURL == "" {
			c.DBURL = "./bloggo.db?_pragma=foreign_keys(1)"
		}
	case DriverPostgres:
		if c.DBURL == "" {
			return errors.New("DB_URL must be set when DB_DRIVER is postgres")
		}
	default:
		return errors.New("unsupported DB_DRIVER: " + c.DBDriver)
	}
	if c.IsDev() && c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.TLSCacheDir == "" {
		// Cache certificates to avoid issues with rate limits (https://letsencrypt.org/docs/rate-limits)
		c.TLSCacheDir = "/var/www/.cache"
	}
	return nil
}

// RequireSecret fails when no token signing secret is available. Only the
// HTTP server needs one.
func (c *Config) RequireSecret() error {
	if c.JWTSecret == "" {
		return errors.New("no secret defined")
	}
	return nil
}

func (c *Config) IsDev() bool {
	return c.Environment == DEV_ENV
}

// SignupAllowed reports whether new accounts may be registered over HTTP.
func (c *Config) SignupAllowed() bool {
	return c.IsDev() || c.EnableSignup
}
