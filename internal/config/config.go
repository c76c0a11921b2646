package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// CalendarConfig holds settings for the shared datetime.Calendar.
type CalendarConfig struct {
	LocalWallClock   string // Initial local wall-clock (empty = System)
	ExclusiveTZOwner bool   // Skip restoring TZ after each critical section
	Locale           string // Locale used for date and time strings
	RegistryCapacity int    // Maximum number of named wall-clocks
	MaxRecurrences   int    // Upper bound for /api/recurrences
}

// ZoneRefreshConfig controls the job that drops cached zone rules.
type ZoneRefreshConfig struct {
	Enabled  bool
	Schedule string        // Cron expression (e.g., "0 3 * * *" for daily at 03:00)
	Timeout  time.Duration // Timeout for one refresh cycle
}

type Config struct {
	// Server
	Port string
	Env  string // "development", "production"

	// CORS
	AllowedOrigins []string

	Calendar    CalendarConfig
	ZoneRefresh ZoneRefreshConfig
}

func Load() *Config {
	return &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// CORS
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),

		Calendar: CalendarConfig{
			LocalWallClock:   os.Getenv("LOCAL_WALLCLOCK"),
			ExclusiveTZOwner: getBoolEnv("TZ_EXCLUSIVE_OWNER", false),
			Locale:           getEnv("DATES_LOCALE", "C"),
			RegistryCapacity: getIntEnv("WALLCLOCK_REGISTRY_CAPACITY", 2000),
			MaxRecurrences:   getIntEnv("MAX_RECURRENCES", 100),
		},

		ZoneRefresh: ZoneRefreshConfig{
			Enabled:  getBoolEnv("ZONE_REFRESH_ENABLED", true),
			Schedule: getEnv("ZONE_REFRESH_SCHEDULE", "0 3 * * *"), // Default: daily at 03:00
			Timeout:  getDurationEnv("ZONE_REFRESH_TIMEOUT", 30*time.Second),
		},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
