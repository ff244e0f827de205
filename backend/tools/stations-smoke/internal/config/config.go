package config

import (
	"errors"
	"strings"
	"time"

	libconfig "qrreservation/backend/libs/config"
	"qrreservation/backend/tools/stations-smoke/internal/models"
)

const (
	defaultBaseURL      = "http://localhost/QR-reservation/backend-php/api"
	defaultTimeout      = 5 * time.Second
	defaultRestaurantID = 1
)

// Config defines stations-smoke configuration.
type Config struct {
	API struct {
		BaseURL string        `yaml:"baseUrl" env:"STATIONS_API_URL"`
		Timeout time.Duration `yaml:"timeout" env:"STATIONS_API_TIMEOUT"`
	} `yaml:"api"`
	Auth struct {
		RestaurantID int64 `yaml:"restaurantId" env:"STATIONS_RESTAURANT_ID"`
	} `yaml:"auth"`
	Station models.StationPayload `yaml:"station"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	cfg := &Config{
		Station: models.StationPayload{
			Nom:         "Grill",
			Description: "Poste de grill",
			Couleur:     "#FF5733",
		},
	}
	cfg.API.BaseURL = defaultBaseURL
	cfg.API.Timeout = defaultTimeout
	cfg.Auth.RestaurantID = defaultRestaurantID
	return cfg
}

// Load configuration via shared helper.
func Load() (*Config, error) {
	cfg := Default()

	if err := libconfig.LoadConfig(cfg); err != nil {
		return nil, err
	}

	cfg.API.BaseURL = strings.TrimSpace(cfg.API.BaseURL)
	if cfg.API.BaseURL == "" {
		return nil, errors.New("config: stations api url required")
	}
	return cfg, nil
}

// Timeout returns the bound for the single request.
func (c *Config) Timeout() time.Duration {
	if c.API.Timeout <= 0 {
		return defaultTimeout
	}
	return c.API.Timeout
}
