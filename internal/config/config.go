package config

import (
	"os"
	"strconv"
	"strings"
)

// DefaultAssetConfigPath is the asset config looked up when none is given.
const DefaultAssetConfigPath = ".asset-gen-config.json"

// Settings holds process-level options read from the environment.
type Settings struct {
	LogLevel        string
	LogFormat       string
	AssetConfigPath string
	JPEGQuality     int
	WebPQuality     int
}

// LoadFromEnv reads Settings from ASSET_KIT_* variables, applying defaults
// for anything unset or unparsable.
func LoadFromEnv() *Settings {
	return &Settings{
		LogLevel:        getEnvOrDefault("ASSET_KIT_LOG_LEVEL", "warn"),
		LogFormat:       getEnvOrDefault("ASSET_KIT_LOG_FORMAT", "text"),
		AssetConfigPath: getEnvOrDefault("ASSET_KIT_CONFIG", DefaultAssetConfigPath),
		JPEGQuality:     parseQualityOrDefault("ASSET_KIT_JPEG_QUALITY", 85),
		WebPQuality:     parseQualityOrDefault("ASSET_KIT_WEBP_QUALITY", 85),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// parseQualityOrDefault accepts only 1-100.
func parseQualityOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if q, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && q >= 1 && q <= 100 {
			return q
		}
	}
	return defaultValue
}
