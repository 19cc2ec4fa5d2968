package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration. It is loaded once at startup and
// passed explicitly into the components that need it — the token service and
// the middlewares never read env vars themselves.
type Config struct {
	Port            string
	Environment     string
	AllowedOrigins  []string
	FrontendBaseURL string
	FileBaseURL     string
	UploadDir       string

	DB   DBConfig
	JWT  JWTConfig
	SMTP SMTPConfig
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN builds the postgres connection string
func (d DBConfig) DSN() string {
	return "postgres://" + d.User + ":" + d.Password + "@" + d.Host + ":" + d.Port + "/" + d.Name + "?sslmode=" + d.SSLMode
}

type JWTConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	Issuer     string
	Audience   string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Load reads configuration from the environment, with development defaults.
// JWT_SECRET has no fallback in release mode.
func Load() *Config {
	environment := getEnv("GIN_MODE", "debug")

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if environment == "release" {
			panic("FATAL: JWT_SECRET environment variable is required in production mode")
		}
		secret = "default_super_secret_key" // Development fallback only — DO NOT use in production
	}

	accessTTL, _ := time.ParseDuration(getEnv("JWT_ACCESS_TTL", "24h"))
	if accessTTL <= 0 {
		accessTTL = 24 * time.Hour
	}
	refreshTTL, _ := time.ParseDuration(getEnv("JWT_REFRESH_TTL", "168h"))
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}

	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "587"))

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Environment:     environment,
		AllowedOrigins:  strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173,http://localhost:3000"), ","),
		FrontendBaseURL: getEnv("FRONTEND_BASE_URL", "http://localhost:5173"),
		FileBaseURL:     strings.TrimRight(getEnv("FILE_BASE_URL", "http://localhost:8080/api/files"), "/"),
		UploadDir:       getEnv("UPLOAD_PATH", "uploads"),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Name:     getEnv("DB_NAME", "hrms"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     secret,
			AccessTTL:  accessTTL,
			RefreshTTL: refreshTTL,
			Issuer:     getEnv("JWT_ISSUER", "hrms-app"),
			Audience:   getEnv("JWT_AUDIENCE", "hrms-users"),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "localhost"),
			Port:     smtpPort,
			Username: getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "HRMS <no-reply@localhost>"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
