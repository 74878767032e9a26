// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DataDir  string // Base directory for the record store database (always absolute)
	Port     int
	LogLevel string
	DevMode  bool // Dev mode: unknown semantic fields panic instead of zero-valuing

	AllowedOrigins string // Comma-separated CORS origins, "*" allows all

	// Analytics defaults
	MajorityThreshold float64 // Ownership threshold for the majority coalition, percent
	RiskFreeRate      float64 // Risk-free rate for Sharpe/Sortino, percent units
	VaRConfidence     float64 // Default VaR/CVaR confidence level, in (0, 1)

	// Result cache and background refresh
	CacheTTL        time.Duration
	RefreshSchedule string // cron spec for the warm-refresh job, empty disables it

	Insights InsightThresholds
}

// InsightThresholds holds the rule thresholds for the insight generator.
// These are configuration, not hidden constants: operators tune them per fund.
type InsightThresholds struct {
	SmallCoalitionSize    int     // Coalition at or below this size warns about concentration
	LargeCoalitionSize    int     // Coalition at or above this size notes diversification
	UndecidedCapitalShare float64 // Percent of capital undecided that triggers a voting warning
	YesCapitalShare       float64 // Percent of capital voting yes that triggers a positive note
	CoalitionHHI          float64 // Coalition concentration index that triggers a warning
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	dataDir := getEnv("KAPITAL_DATA_DIR", "")
	if dataDir == "" {
		dataDir = "./data"
	}

	// Always resolve to absolute path
	absDataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}

	// Ensure directory exists
	if err := os.MkdirAll(absDataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := &Config{
		DataDir:           absDataDir,
		Port:              getEnvAsInt("PORT", 8080),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		DevMode:           getEnvAsBool("DEV_MODE", false),
		AllowedOrigins:    getEnv("ALLOWED_ORIGINS", "*"),
		MajorityThreshold: getEnvAsFloat("MAJORITY_THRESHOLD", 51.0),
		RiskFreeRate:      getEnvAsFloat("RISK_FREE_RATE", 2.0),
		VaRConfidence:     getEnvAsFloat("VAR_CONFIDENCE", 0.05),
		CacheTTL:          time.Duration(getEnvAsInt("CACHE_TTL_SECONDS", 300)) * time.Second,
		RefreshSchedule:   getEnv("REFRESH_SCHEDULE", "@every 15m"),
		Insights: InsightThresholds{
			SmallCoalitionSize:    getEnvAsInt("INSIGHT_SMALL_COALITION", 5),
			LargeCoalitionSize:    getEnvAsInt("INSIGHT_LARGE_COALITION", 20),
			UndecidedCapitalShare: getEnvAsFloat("INSIGHT_UNDECIDED_SHARE", 30.0),
			YesCapitalShare:       getEnvAsFloat("INSIGHT_YES_SHARE", 60.0),
			CoalitionHHI:          getEnvAsFloat("INSIGHT_COALITION_HHI", 2500.0),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configured analytics parameters. Out-of-range values
// here are operator errors and must fail startup rather than surface later
// inside a request.
func (c *Config) Validate() error {
	if c.MajorityThreshold <= 0 || c.MajorityThreshold > 100 {
		return fmt.Errorf("MAJORITY_THRESHOLD must be in (0, 100], got %v", c.MajorityThreshold)
	}
	if c.VaRConfidence <= 0 || c.VaRConfidence >= 1 {
		return fmt.Errorf("VAR_CONFIDENCE must be in (0, 1), got %v", c.VaRConfidence)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("CACHE_TTL_SECONDS must not be negative")
	}
	return nil
}

// Origins splits AllowedOrigins into the list CORS middleware expects.
func (c *Config) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
