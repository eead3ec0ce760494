package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures all tunable parameters for the API process. Values come
// from environment variables with defaults that let the binary run locally
// without excessive setup.
type Config struct {
	Port string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// DatabaseURL wins over the discrete POSTGRES_* settings when set.
	DatabaseURL      string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     int

	// AuthMode selects the identity provider: "jwt" verifies HS256 tokens
	// locally with JWTSecret, "http" delegates to AuthURL.
	AuthMode   string
	JWTSecret  string
	AuthURL    string
	AuthAPIKey string

	// RedisAddr, when set, enables the identity resolution cache.
	RedisAddr        string
	RedisPassword    string
	IdentityCacheTTL time.Duration

	PriceMin int64
	PriceMax int64

	LogLevel string
}

func defaults() Config {
	return Config{
		Port:             "8080",
		ReadTimeout:      5 * time.Second,
		WriteTimeout:     10 * time.Second,
		IdleTimeout:      120 * time.Second,
		PostgresHost:     "localhost",
		PostgresPort:     5432,
		AuthMode:         "jwt",
		IdentityCacheTTL: time.Minute,
		PriceMin:         199,
		PriceMax:         1499,
		LogLevel:         "info",
	}
}

// Load reads the environment and validates the combination of settings.
func Load() (Config, error) {
	cfg := defaults()

	setString(&cfg.Port, "PORT")
	cfg.Port = strings.TrimPrefix(cfg.Port, ":")

	var errs []string
	setDuration(&cfg.ReadTimeout, "HTTP_READ_TIMEOUT", &errs)
	setDuration(&cfg.WriteTimeout, "HTTP_WRITE_TIMEOUT", &errs)
	setDuration(&cfg.IdleTimeout, "HTTP_IDLE_TIMEOUT", &errs)

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	setString(&cfg.PostgresUser, "POSTGRES_USER")
	setString(&cfg.PostgresPassword, "POSTGRES_PASSWORD")
	setString(&cfg.PostgresDB, "POSTGRES_DB")
	setString(&cfg.PostgresHost, "POSTGRES_HOST")
	setInt64AsInt(&cfg.PostgresPort, "POSTGRES_PORT", &errs)

	setString(&cfg.AuthMode, "AUTH_MODE")
	cfg.AuthMode = strings.ToLower(cfg.AuthMode)
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.AuthURL = os.Getenv("AUTH_URL")
	cfg.AuthAPIKey = os.Getenv("AUTH_API_KEY")

	cfg.RedisAddr = strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	setDuration(&cfg.IdentityCacheTTL, "IDENTITY_CACHE_TTL", &errs)

	setInt64(&cfg.PriceMin, "PRICE_MIN", &errs)
	setInt64(&cfg.PriceMax, "PRICE_MAX", &errs)

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	if cfg.DatabaseURL == "" {
		if cfg.PostgresUser == "" {
			errs = append(errs, "POSTGRES_USER is required when DATABASE_URL is unset")
		}
		if cfg.PostgresDB == "" {
			errs = append(errs, "POSTGRES_DB is required when DATABASE_URL is unset")
		}
	}

	switch cfg.AuthMode {
	case "jwt":
		if cfg.JWTSecret == "" {
			errs = append(errs, "JWT_SECRET is required when AUTH_MODE=jwt")
		}
	case "http":
		if cfg.AuthURL == "" {
			errs = append(errs, "AUTH_URL is required when AUTH_MODE=http")
		}
	default:
		errs = append(errs, fmt.Sprintf("unknown AUTH_MODE %q", cfg.AuthMode))
	}

	if cfg.PriceMin <= 0 || cfg.PriceMax < cfg.PriceMin {
		errs = append(errs, "PRICE_MIN/PRICE_MAX must satisfy 0 < min <= max")
	}

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return cfg, nil
}

func setString(target *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*target = v
	}
}

func setDuration(target *time.Duration, key string, errs *[]string) {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			*errs = append(*errs, fmt.Sprintf("invalid %s: %v", key, err))
			return
		}
		*target = d
	}
}

func setInt64(target *int64, key string, errs *[]string) {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			*errs = append(*errs, fmt.Sprintf("%s must be a number", key))
			return
		}
		*target = i
	}
}

func setInt64AsInt(target *int, key string, errs *[]string) {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			*errs = append(*errs, fmt.Sprintf("%s must be a number", key))
			return
		}
		*target = i
	}
}
