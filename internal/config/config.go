package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                 string
	DBUrl                string
	JWTSecret            string
	AppEnv               string
	MailAPIURL           string
	MailAPIKey           string
	MailFromEmail        string
	TelegramBotToken     string
	TelegramReviewChatID int64
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	jwtSecret, exists := os.LookupEnv("JWT_SECRET")
	if !exists || jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &Config{
		Port:                 getEnv("PORT", "8080"),
		DBUrl:                getEnv("DB_URL", ""),
		JWTSecret:            jwtSecret,
		AppEnv:               normalizeEnv(getEnv("APP_ENV", "production")),
		MailAPIURL:           getEnv("MAIL_API_URL", ""),
		MailAPIKey:           getEnv("MAIL_API_KEY", ""),
		MailFromEmail:        getEnv("MAIL_FROM_EMAIL", ""),
		TelegramBotToken:     getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramReviewChatID: getEnvInt64("TELEGRAM_REVIEW_CHAT_ID", 0),
	}, nil
}

// MailConfigured reports whether the plan delivery dispatcher can be wired.
func (c *Config) MailConfigured() bool {
	return c.MailAPIURL != "" && c.MailAPIKey != "" && c.MailFromEmail != ""
}

// TelegramConfigured reports whether review alerts can be wired.
func (c *Config) TelegramConfigured() bool {
	return c.TelegramBotToken != "" && c.TelegramReviewChatID != 0
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}
