package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	LogMode    string
	ServerPort string

	DatabaseURL string

	S3Bucket   string
	S3Endpoint string
	AWSRegion  string

	JWTSecret string

	MaxUserTasks         int
	MaxParallelDownloads int
	MaxDurationSeconds   int
	PresignTTLSeconds    int
	DownloadDir          string
}

func checkEnv(envVars []string) error {
	var missingVars []string

	for _, envVar := range envVars {
		if value, exists := os.LookupEnv(envVar); !exists || value == "" {
			missingVars = append(missingVars, envVar)
		}
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("error: this env vars are missing: %v", missingVars)
	}

	return nil
}

func validateEnv() error {
	return checkEnv([]string{
		"LOG_MODE",
		"SERVER_PORT",
		"DATABASE_URL",
		"S3_BUCKET",
		"JWT_SECRET",
	})
}

func intEnv(name string, fallback int) (int, error) {
	raw, exists := os.LookupEnv(name)
	if !exists || raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, v)
	}
	return v, nil
}

func stringEnv(name, fallback string) string {
	if v, exists := os.LookupEnv(name); exists && v != "" {
		return v
	}
	return fallback
}

func LoadConfig(envPath string) (*Config, error) {
	if err := godotenv.Load(envPath); err != nil {
		return nil, fmt.Errorf("load configuration file: %w", err)
	}

	if err := validateEnv(); err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	cfg := &Config{
		LogMode:     os.Getenv("LOG_MODE"),
		ServerPort:  os.Getenv("SERVER_PORT"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		AWSRegion:   stringEnv("AWS_REGION", "us-east-1"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		DownloadDir: stringEnv("DOWNLOAD_DIR", "./downloads"),
	}

	var err error
	if cfg.MaxUserTasks, err = intEnv("MAX_USER_TASKS", 5); err != nil {
		return nil, err
	}
	if cfg.MaxParallelDownloads, err = intEnv("MAX_PARALLEL_DOWNLOADS", 2); err != nil {
		return nil, err
	}
	if cfg.MaxDurationSeconds, err = intEnv("MAX_DURATION_SECONDS", 600); err != nil {
		return nil, err
	}
	if cfg.PresignTTLSeconds, err = intEnv("PRESIGN_TTL_SECONDS", 600); err != nil {
		return nil, err
	}

	return cfg, nil
}
