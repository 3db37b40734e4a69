package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort         string
	MySQLDSN           string
	JWTSecret          string
	JWTIssuer          string
	JWTAudience        string
	CustomerAPIURL     string
	CustomerAPITimeout time.Duration
	SwaggerHost        string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		MySQLDSN:           getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/loccar?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:          getEnv("JWT_SECRET", "change-me"),
		JWTIssuer:          getEnv("JWT_ISSUER", "Loccar"),
		JWTAudience:        getEnv("JWT_AUDIENCE", "Loccar"),
		CustomerAPIURL:     getEnv("LOCCAR_API_BASE_URL", "http://localhost:5100"),
		CustomerAPITimeout: getEnvDuration("LOCCAR_API_TIMEOUT", 10*time.Second),
		SwaggerHost:        os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
