package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	UpstreamBaseURL string
	Port            string
	SessionFile     string
	UpstreamTimeout time.Duration
}

// Load reads the console configuration from the environment, with .env as a
// convenience for local runs. UPSTREAM_BASE_URL is the only required value.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}

	cfg := Config{
		UpstreamBaseURL: getEnvOrDefault("UPSTREAM_BASE_URL", ""),
		Port:            getEnvOrDefault("PORT", "8080"),
		SessionFile:     getEnvOrDefault("SESSION_FILE", ".session.json"),
		UpstreamTimeout: getDurationEnv("UPSTREAM_TIMEOUT", 15, time.Second),
	}

	if cfg.UpstreamBaseURL == "" {
		return Config{}, fmt.Errorf("UPSTREAM_BASE_URL is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
