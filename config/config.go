package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config reads a key from .env (falling back to the process environment).
func Config(key string) string {
	godotenv.Load(".env")
	return os.Getenv(key)
}

func ConfigInt(key string, fallback int) int {
	raw := Config(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// CleanupBufferMinutes is the time a hall stays blocked after a movie ends.
func CleanupBufferMinutes() int {
	return ConfigInt("CLEANUP_BUFFER_MINUTES", 15)
}

// DefaultTimezone is used for cinemas without an explicit IANA timezone.
func DefaultTimezone() string {
	if tz := Config("DEFAULT_TIMEZONE"); tz != "" {
		return tz
	}
	return "Asia/Ho_Chi_Minh"
}
