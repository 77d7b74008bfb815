// File: /config/config.go
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port           string
	DatabaseDriver string
	DatabaseURL    string

	JWTSecret       string
	JWTIssuer       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	RateLimitPerMinute int
	RateLimitBurst     int
	AllowedOrigins     []string

	LogLevel string
	LogJSON  bool

	// Email Configuration (optional: empty SMTPHost disables sending)
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

func Load() *Config {
	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	accessMin, _ := strconv.Atoi(getEnv("ACCESS_TOKEN_TTL_MIN", "15"))
	refreshDays, _ := strconv.Atoi(getEnv("REFRESH_TOKEN_TTL_DAYS", "30"))
	ratePerMin, _ := strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "120"))
	rateBurst, _ := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "30"))

	origins := []string{"*"}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		origins = []string{v}
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseDriver: getEnv("DATABASE_DRIVER", "mysql"),
		DatabaseURL:    getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/motolinks?charset=utf8mb4&parseTime=True&loc=Local"),

		JWTSecret:       getEnv("JWT_SECRET", "your-secret-key"),
		JWTIssuer:       getEnv("JWT_ISSUER", "motolinks-api"),
		AccessTokenTTL:  time.Duration(accessMin) * time.Minute,
		RefreshTokenTTL: time.Duration(refreshDays) * 24 * time.Hour,

		RateLimitPerMinute: ratePerMin,
		RateLimitBurst:     rateBurst,
		AllowedOrigins:     origins,

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogJSON:  getEnv("LOG_JSON", "false") == "true",

		// Email settings
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     smtpPort,
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@motolinks.example"),
		FromName:     getEnv("FROM_NAME", "MotoLinks"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
