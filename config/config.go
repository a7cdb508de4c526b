package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Environment string
	Port        string

	DatabaseURL string
	RedisURL    string

	JWTSecret          string
	AccessTokenMinutes int
	RefreshTokenDays   int

	UploadDir     string
	MaxFileSizeMB int64

	FirstAdminEmail    string
	FirstAdminPassword string
}

// Load reads configuration from environment variables, loading a .env
// file first when not running in production.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:        env,
		Port:               os.Getenv("PORT"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RedisURL:           os.Getenv("REDIS_URL"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		AccessTokenMinutes: envInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		RefreshTokenDays:   envInt("REFRESH_TOKEN_EXPIRE_DAYS", 7),
		UploadDir:          os.Getenv("UPLOAD_DIR"),
		MaxFileSizeMB:      int64(envInt("MAX_FILE_SIZE_MB", 10)),
		FirstAdminEmail:    os.Getenv("FIRST_ADMIN_EMAIL"),
		FirstAdminPassword: os.Getenv("FIRST_ADMIN_PASSWORD"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if cfg.FirstAdminEmail == "" {
		cfg.FirstAdminEmail = "admin@example.com"
	}
	if cfg.FirstAdminPassword == "" {
		cfg.FirstAdminPassword = "changeme123"
	}

	return cfg, nil
}

func envInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("Warning: %s=%q is not a number, using %d", key, s, fallback)
		return fallback
	}
	return n
}
