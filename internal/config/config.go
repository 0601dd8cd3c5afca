package config

import (
	"errors"  // Validation errors
	"fmt"     // Error formatting
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // List parsing
	"time"    // Durations

	"github.com/joho/godotenv" // For loading .env files
)

// Supported database drivers
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the application configuration
type Config struct {
	AppPort            string        // Application port
	DBDriver           string        // mysql, postgres or sqlite
	DBUser             string        // Database user
	DBPassword         string        // Database password
	DBHost             string        // Database host
	DBPort             string        // Database port
	DBName             string        // Database name
	DBSSLMode          string        // PostgreSQL sslmode
	DBPath             string        // SQLite file path
	JWTSecret          string        // JWT secret key
	JWTIssuer          string        // JWT issuer claim
	SessionTTL         time.Duration // Absolute session lifetime
	SessionIdleTimeout time.Duration // Inactivity limit, zero disables it
	CookieName         string        // Session cookie name
	CookieSecure       bool          // Send the cookie over HTTPS only
	CORSOrigins        []string      // Allowed front end origins
	RedisAddr          string        // Redis server address, empty keeps sessions in process
	RedisPass          string        // Redis password
	RedisDB            int           // Redis database number
	PasswordHash       string        // argon2id or bcrypt
	SeedAdminEmail     string        // Email of the bootstrap administrator
	LogLevel           string        // logrus level name
	IsProd             bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:            getenv("APP_PORT", "8080"),
		DBDriver:           getenv("DB_DRIVER", DriverMySQL),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBHost:             getenv("DB_HOST", "127.0.0.1"),
		DBPort:             getenv("DB_PORT", "3306"),
		DBName:             getenv("DB_NAME", "employee_management"),
		DBSSLMode:          getenv("DB_SSLMODE", "disable"),
		DBPath:             getenv("DB_PATH", "employee_management.db"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		JWTIssuer:          getenv("JWT_ISSUER", "employee-management"),
		SessionTTL:         getenvDuration("SESSION_TTL", 60*time.Minute),
		SessionIdleTimeout: getenvDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute),
		CookieName:         getenv("SESSION_COOKIE_NAME", "ems_session"),
		CookieSecure:       os.Getenv("SESSION_COOKIE_SECURE") == "true",
		CORSOrigins:        getenvList("CORS_ORIGINS"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPass:          os.Getenv("REDIS_PASS"),
		RedisDB:            getenvInt("REDIS_DB", 0),
		PasswordHash:       getenv("PASSWORD_HASH", "argon2id"),
		SeedAdminEmail:     os.Getenv("SEED_ADMIN_EMAIL"),
		LogLevel:           getenv("LOG_LEVEL", "info"),
		IsProd:             os.Getenv("IS_PROD") == "true",
	}
}

// Validate reports the first setting the server cannot start with
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	switch c.DBDriver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.PasswordHash {
	case "argon2id", "bcrypt":
	default:
		return fmt.Errorf("unsupported PASSWORD_HASH %q", c.PasswordHash)
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.SessionIdleTimeout < 0 {
		return errors.New("SESSION_IDLE_TIMEOUT must not be negative")
	}
	return nil
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

// getenvDuration accepts Go durations ("45m") or whole minutes ("45")
func getenvDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	if minutes, err := strconv.Atoi(val); err == nil {
		return time.Duration(minutes) * time.Minute
	}
	return fallback
}

func getenvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
