package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the portal.
type Config struct {
	App     AppConfig
	API     APIConfig
	Storage StorageConfig
	Routes  RoutesConfig
	Logger  LoggerConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// APIConfig describes the remote LearnHub API.
type APIConfig struct {
	BaseURL               string
	AdminPathPrefix       string
	RequestTimeoutSeconds int
}

// StorageConfig selects and configures the credential storage driver.
type StorageConfig struct {
	Driver     string
	SQLitePath string
	Redis      RedisConfig
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// RoutesConfig names the portal routes the session layer redirects to.
type RoutesConfig struct {
	SignPath       string
	LoginPath      string
	AdminLoginPath string
	HomePath       string
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "learnhub-portal"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		API: APIConfig{
			BaseURL:               getEnv("API_BASE_URL", "http://127.0.0.1:3000/api"),
			AdminPathPrefix:       getEnv("API_ADMIN_PATH_PREFIX", "/admin"),
			RequestTimeoutSeconds: getEnvAsInt("API_REQUEST_TIMEOUT_SECONDS", 15),
		},
		Storage: StorageConfig{
			Driver:     getEnv("SESSION_STORAGE_DRIVER", "sqlite"),
			SQLitePath: getEnv("SESSION_SQLITE_PATH", "learnhub-session.db"),
			Redis: RedisConfig{
				Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
				Password: os.Getenv("REDIS_PASSWORD"),
				DB:       redisDB,
				Prefix:   getEnv("REDIS_KEY_PREFIX", "learnhub:credential:"),
			},
		},
		Routes: RoutesConfig{
			SignPath:       getEnv("ROUTE_SIGN_PATH", "/auth/sign"),
			LoginPath:      getEnv("ROUTE_LOGIN_PATH", "/auth/login"),
			AdminLoginPath: getEnv("ROUTE_ADMIN_LOGIN_PATH", "/admin/login"),
			HomePath:       getEnv("ROUTE_HOME_PATH", "/"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// RequestTimeout returns the outbound API call timeout.
func (a APIConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
