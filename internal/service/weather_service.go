package service

import (
	"context"

	"github.com/noah-isme/park-maintenance-api/internal/models"
	"github.com/noah-isme/park-maintenance-api/pkg/config"
)

// StaticWeatherProvider reports a fixed, configured observation. It stands in
// for a live weather feed; a disabled provider reports no observation.
type StaticWeatherProvider struct {
	enabled  bool
	snapshot models.Weather
}

// NewStaticWeatherProvider builds a provider from configuration.
func NewStaticWeatherProvider(cfg config.WeatherConfig) *StaticWeatherProvider {
	return &StaticWeatherProvider{
		enabled: cfg.Enabled,
		snapshot: models.Weather{
			Temperature: cfg.Temperature,
			Description: cfg.Description,
			Rain:        cfg.Rain,
		},
	}
}

// Current returns a copy of the configured observation, or nil when disabled.
func (p *StaticWeatherProvider) Current(ctx context.Context) (*models.Weather, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p == nil || !p.enabled {
		return nil, nil
	}
	snapshot := p.snapshot
	return &snapshot, nil
}
