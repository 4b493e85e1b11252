package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	InputDir    string
	OutputDir   string
	County      string
	ProfilePath string
	BaseURL     string

	DBPath     string
	ExportXLSX string

	LogFormat string
	LogLevel  string

	ReviewLimit int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		InputDir:    getEnv("PARCELNORM_INPUT_DIR", filepath.Join(cwd, "input")),
		OutputDir:   getEnv("PARCELNORM_OUTPUT_DIR", filepath.Join(cwd, "data")),
		County:      getEnv("PARCELNORM_COUNTY", ""),
		ProfilePath: getEnv("PARCELNORM_PROFILE_PATH", ""),
		BaseURL:     getEnv("PARCELNORM_BASE_URL", ""),

		DBPath:     getEnv("PARCELNORM_DB_PATH", ""),
		ExportXLSX: getEnv("PARCELNORM_EXPORT_XLSX", ""),

		LogFormat: getEnv("PARCELNORM_LOG_FORMAT", "console"),
		LogLevel:  getEnv("PARCELNORM_LOG_LEVEL", "info"),

		ReviewLimit: getEnvInt("PARCELNORM_REVIEW_LIMIT", 50),
	}

	return cfg, nil
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required setting: %s", name)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
