package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Environment ("development" exposes internal error details)
	AppEnv string

	// Database
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string

	// JWT
	JWTSecret string
	JWTExpiry time.Duration

	// Password hashing
	BcryptCost int

	// Bootstrap super admin
	SuperAdminEmail    string
	SuperAdminUsername string
	SuperAdminPassword string

	// Server
	Port        string
	CORSOrigins string

	// Rate limits per IP per minute; 0 disables
	RateLimitPerMinute      int
	LoginRateLimitPerMinute int

	// Observability
	SentryDSN    string
	LogRetention time.Duration
}

func Load() *Config {
	return &Config{
		AppEnv: getEnv("APP_ENV", "production"),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "tailor_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBPath:     getEnv("DB_PATH", "tailor.db"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTExpiry: parseDuration(getEnv("JWT_EXPIRY", "168h"), 7*24*time.Hour),

		BcryptCost: parseInt(getEnv("BCRYPT_COST", "10"), 10),

		SuperAdminEmail:    getEnv("SUPERADMIN_EMAIL", "superadmin@tailor.com"),
		SuperAdminUsername: getEnv("SUPERADMIN_USERNAME", "superadmin"),
		SuperAdminPassword: getEnv("SUPERADMIN_PASSWORD", "SuperAdmin@123"),

		Port:        getEnv("PORT", "5000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		RateLimitPerMinute:      parseInt(getEnv("RATE_LIMIT_PER_MINUTE", "60"), 60),
		LoginRateLimitPerMinute: parseInt(getEnv("LOGIN_RATE_LIMIT_PER_MINUTE", "10"), 10),

		SentryDSN:    getEnv("SENTRY_DSN", ""),
		LogRetention: parseDuration(getEnv("LOG_RETENTION", "720h"), 30*24*time.Hour),
	}
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET environment variable is required")
	}
	switch c.DBDriver {
	case "postgres":
		if c.DBPassword == "" {
			return errors.New("DB_PASSWORD environment variable is required")
		}
	case "sqlite":
		if c.DBPath == "" {
			return errors.New("DB_PATH environment variable is required for sqlite")
		}
	default:
		return errors.New("DB_DRIVER must be postgres or sqlite")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
