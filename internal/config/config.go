// Package config loads the service configuration from environment variables.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   Server
	Postgres Postgres
	Redis    Redis
	Security Security
	Seed     Seed
}

type Server struct {
	Port            int
	Env             string // local | production
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Postgres holds the DSN and the connection pool limits.
type Postgres struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

// Redis is optional: an empty Addr keeps the cache and denylist in memory
// and disables rate limiting.
type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Security struct {
	JWTSecret        string
	JWTTTL           time.Duration
	RateLimitRPS     int
	CORSAllowOrigins []string
}

type Seed struct {
	ReferenceData bool
	AdminEmail    string
	AdminPassword string
}

func (s Server) IsLocal() bool { return s.Env == "local" }

func (r Redis) Enabled() bool { return r.Addr != "" }

// Load reads the configuration from the environment. Call LoadDotEnvUp first
// to pick up a .env file.
func Load() (*Config, error) {
	cfg := &Config{
		Server: Server{
			Port:            getInt("PORT", 5000),
			Env:             getEnv("APP_ENV", "local"),
			ReadTimeout:     getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: Postgres{
			DSN:             getEnv("POSTGRES_URL", ""),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBool("DB_AUTO_MIGRATE", true),
		},
		Redis: Redis{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		Security: Security{
			JWTSecret:        getEnv("JWT_SECRET", ""),
			JWTTTL:           getDuration("JWT_TTL", 7*24*time.Hour),
			RateLimitRPS:     getInt("RATE_LIMIT_RPS", 0),
			CORSAllowOrigins: getList("CORS_ALLOW_ORIGINS", []string{"*"}),
		},
		Seed: Seed{
			ReferenceData: getBool("SEED_REFERENCE_DATA", true),
			AdminEmail:    getEnv("ADMIN_EMAIL", "admin@globetrotter.com"),
			AdminPassword: getEnv("ADMIN_PASSWORD", "admin"),
		},
	}

	if cfg.Postgres.DSN == "" {
		cfg.Postgres.DSN = buildDSN(
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", "postgres"),
			getEnv("DB_NAME", "globetrotter"),
			getEnv("DB_SSLMODE", "disable"),
		)
	}

	if cfg.Postgres.MaxOpenConns < 1 {
		return nil, fmt.Errorf("DB_MAX_OPEN_CONNS must be positive, got %d", cfg.Postgres.MaxOpenConns)
	}
	if cfg.Security.JWTTTL <= 0 {
		return nil, fmt.Errorf("JWT_TTL must be positive")
	}
	if cfg.Security.JWTSecret == "" && !cfg.Server.IsLocal() {
		return nil, fmt.Errorf("JWT_SECRET is required when APP_ENV=%s", cfg.Server.Env)
	}
	return cfg, nil
}

func buildDSN(host, port, user, password, name, sslmode string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     host + ":" + port,
		Path:     "/" + name,
		RawQuery: "sslmode=" + url.QueryEscape(sslmode),
	}
	return u.String()
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// getBool parses 1/true/yes and 0/false/no; anything else yields def.
func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes":
			return true
		case "0", "false", "no":
			return false
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
