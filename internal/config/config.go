// Package config loads runtime settings from an optional config file and
// ORIENT_* environment variables, with working defaults for every value.
// The heuristics that used to be magic constants (road search radius, road
// label length, OCR threshold) live here so deployments can tune them.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all tunable settings.
type Config struct {
	// ServerAddress is the HTTP API listen address.
	ServerAddress string `mapstructure:"server_address"`

	// NominatimURL is the base URL of the geocoding service.
	NominatimURL string `mapstructure:"nominatim_url"`

	// OverpassURL is the base URL of the road-geometry service.
	OverpassURL string `mapstructure:"overpass_url"`

	// UserAgent identifies this tool to the OSM services.
	UserAgent string `mapstructure:"user_agent"`

	// HTTPTimeout bounds each outbound request.
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`

	// SearchRadiusM is how far around the geocoded point to look for roads.
	SearchRadiusM int `mapstructure:"search_radius_m"`

	// MinRoadLabelLen is the minimum rune count for an OCR word to count
	// as a road-name candidate.
	MinRoadLabelLen int `mapstructure:"min_road_label_len"`

	// OCRLanguage is the Tesseract language code.
	OCRLanguage string `mapstructure:"ocr_language"`

	// OCRMinConfidence drops OCR detections below this confidence (0-1).
	OCRMinConfidence float64 `mapstructure:"ocr_min_confidence"`

	// OCRBlurRadius is the Gaussian radius applied before thresholding.
	OCRBlurRadius float64 `mapstructure:"ocr_blur_radius"`

	// OCRThreshold is the binarization cut (0-255).
	OCRThreshold int `mapstructure:"ocr_threshold"`

	// AnnotateColor is the hex color for drawn annotations.
	AnnotateColor string `mapstructure:"annotate_color"`

	// ArrowLengthPx is how long the facing arrow is drawn on annotations.
	ArrowLengthPx float64 `mapstructure:"arrow_length_px"`
}

// Load reads configuration from <path>/config.yaml if present, then applies
// ORIENT_* environment overrides (e.g. ORIENT_SEARCH_RADIUS_M=200). A
// missing config file is not an error; defaults cover everything.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("server_address", ":8080")
	v.SetDefault("nominatim_url", "https://nominatim.openstreetmap.org")
	v.SetDefault("overpass_url", "https://overpass-api.de")
	v.SetDefault("user_agent", "microburbs-orient/1.0")
	v.SetDefault("http_timeout", 30*time.Second)
	v.SetDefault("search_radius_m", 120)
	v.SetDefault("min_road_label_len", 5)
	v.SetDefault("ocr_language", "eng")
	v.SetDefault("ocr_min_confidence", 0.3)
	v.SetDefault("ocr_blur_radius", 1.0)
	v.SetDefault("ocr_threshold", 180)
	v.SetDefault("annotate_color", "#ffcc00")
	v.SetDefault("arrow_length_px", 60)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.SetEnvPrefix("orient")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.SearchRadiusM <= 0 {
		return Config{}, fmt.Errorf("search_radius_m must be positive, got %d", cfg.SearchRadiusM)
	}
	if cfg.OCRThreshold < 0 || cfg.OCRThreshold > 255 {
		return Config{}, fmt.Errorf("ocr_threshold must be 0-255, got %d", cfg.OCRThreshold)
	}

	return cfg, nil
}
