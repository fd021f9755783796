package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Jose15Gon/OpenMeteoService/internal/weather"
)

type AppConfig struct {
	// BaseURL of the Open-Meteo forecast endpoint.
	BaseURL string

	// HTTPTimeout applies to every outbound request.
	HTTPTimeout time.Duration

	// Metrics is the default selection used when the CLI passes none.
	Metrics []weather.Metric
}

// defaultMetrics mirrors the hard-coded selection of the reference CLI.
var defaultMetrics = []weather.Metric{
	weather.MetricTemperature,
	weather.MetricApparentTemperature,
	weather.MetricRelativeHumidity,
	weather.MetricPrecipitation,
	weather.MetricWindSpeed,
	weather.MetricWindGusts,
	weather.MetricIsDay,
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.BaseURL = getenvDefault("OPENMETEO_BASE_URL", weather.DefaultBaseURL)

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	metrics, err := loadMetrics()
	if err != nil {
		return nil, err
	}
	cfg.Metrics = metrics

	return cfg, nil
}

// loadMetrics parses WEATHER_METRICS as a comma-separated list of
// normalized metric names, falling back to the default selection.
func loadMetrics() ([]weather.Metric, error) {
	raw := os.Getenv("WEATHER_METRICS")
	if raw == "" {
		return defaultMetrics, nil
	}

	var metrics []weather.Metric
	for _, name := range strings.Split(raw, ",") {
		m, err := weather.ParseMetric(strings.TrimSpace(name))
		if err != nil {
			return nil, fmt.Errorf("invalid WEATHER_METRICS: %w", err)
		}
		metrics = append(metrics, m)
	}
	return metrics, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
