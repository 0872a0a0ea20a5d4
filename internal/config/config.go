package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultGeminiURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

type Config struct {
	VerifyToken string

	FacebookAPIURL      string
	FacebookAccessToken string

	GeminiAPIKey string
	GeminiAPIURL string

	Port string

	// HistoryLimit caps the number of stored messages per user.
	// 0 keeps the full history for the life of the process.
	HistoryLimit int
}

func Load() (*Config, error) {
	// .env is optional — env vars may already be set (e.g. in production)
	_ = godotenv.Load()

	cfg := &Config{
		VerifyToken:         os.Getenv("VERIFY_TOKEN"),
		FacebookAPIURL:      os.Getenv("FACEBOOK_API_URL"),
		FacebookAccessToken: os.Getenv("FACEBOOK_ACCESS_TOKEN"),
		GeminiAPIKey:        os.Getenv("GEMINI_API_KEY"),
		GeminiAPIURL:        os.Getenv("GEMINI_API_URL"),
		Port:                os.Getenv("PORT"),
		HistoryLimit:        parseIntEnv("HISTORY_LIMIT"),
	}

	if cfg.Port == "" {
		cfg.Port = "3000"
	}

	if cfg.GeminiAPIURL == "" {
		cfg.GeminiAPIURL = defaultGeminiURL
	}

	for _, req := range []struct {
		name, val string
	}{
		{"VERIFY_TOKEN", cfg.VerifyToken},
		{"FACEBOOK_API_URL", cfg.FacebookAPIURL},
		{"FACEBOOK_ACCESS_TOKEN", cfg.FacebookAccessToken},
		{"GEMINI_API_KEY", cfg.GeminiAPIKey},
	} {
		if req.val == "" {
			return nil, fmt.Errorf("required env var %s is not set", req.name)
		}
	}

	return cfg, nil
}

func parseIntEnv(key string) int {
	v, _ := strconv.Atoi(os.Getenv(key))
	return v
}
