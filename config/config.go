package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server    ServerConfig
	Dataset   DatasetConfig
	JWT       JWTConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Analytics AnalyticsConfig
}

type ServerConfig struct {
	Port         int
	AuthRequired bool
}

type DatasetConfig struct {
	Path          string
	Delimiter     string
	NullThreshold float64
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins string
}

type AnalyticsConfig struct {
	// ClassifierPolicy selects the congestion classifier: "quantile"
	// (four-level, distribution-relative) or "fixed" (three-level,
	// absolute thresholds).
	ClassifierPolicy string
	HistogramBins    int
	TopDetectors     int
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

func LoadConfig() (*Config, error) {
	serverPort, err := getIntEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	jwtExpiry, err := getIntEnv("JWT_EXPIRY_HOURS", 24)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRY_HOURS: %w", err)
	}

	redisPort, err := getIntEnv("REDIS_PORT", 6379)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_PORT: %w", err)
	}

	redisDB, err := getIntEnv("REDIS_DB", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	nullThreshold, err := getFloatEnv("DATASET_NULL_THRESHOLD", 0.95)
	if err != nil {
		return nil, fmt.Errorf("invalid DATASET_NULL_THRESHOLD: %w", err)
	}
	if nullThreshold <= 0 || nullThreshold > 1 {
		return nil, fmt.Errorf("DATASET_NULL_THRESHOLD must be in (0,1], got %v", nullThreshold)
	}

	histogramBins, err := getIntEnv("ANALYTICS_HISTOGRAM_BINS", 50)
	if err != nil {
		return nil, fmt.Errorf("invalid ANALYTICS_HISTOGRAM_BINS: %w", err)
	}

	topDetectors, err := getIntEnv("ANALYTICS_TOP_DETECTORS", 10)
	if err != nil {
		return nil, fmt.Errorf("invalid ANALYTICS_TOP_DETECTORS: %w", err)
	}

	policy := getEnv("ANALYTICS_CLASSIFIER_POLICY", "quantile")
	if policy != "quantile" && policy != "fixed" {
		return nil, fmt.Errorf("ANALYTICS_CLASSIFIER_POLICY must be quantile or fixed, got %q", policy)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         serverPort,
			AuthRequired: getEnv("AUTH_REQUIRED", "false") == "true",
		},
		Dataset: DatasetConfig{
			Path:          getEnv("DATASET_PATH", "basel.csv"),
			Delimiter:     getEnv("DATASET_DELIMITER", ","),
			NullThreshold: nullThreshold,
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", "dev-secret-change-me"),
			ExpiryHours: jwtExpiry,
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     redisPort,
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Analytics: AnalyticsConfig{
			ClassifierPolicy: policy,
			HistogramBins:    histogramBins,
			TopDetectors:     topDetectors,
		},
	}

	if len(cfg.Dataset.Delimiter) != 1 {
		return nil, fmt.Errorf("DATASET_DELIMITER must be a single character, got %q", cfg.Dataset.Delimiter)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getIntEnv(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	return parsed, nil
}

func getFloatEnv(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	return parsed, nil
}
