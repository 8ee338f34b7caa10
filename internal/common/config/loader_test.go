package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	applyDefaults(&cfg)

	assert.Equal(t, "clipbook-dialer", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://api.hubapi.com", cfg.HubSpot.BaseURL)
	assert.Equal(t, 30000, cfg.HubSpot.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := Config{
		Server:  ServerConfig{Port: 9090},
		HubSpot: HubSpotConfig{BaseURL: "http://localhost:8081", Timeout: 5000},
		Logging: LoggingConfig{Level: "debug"},
	}
	applyDefaults(&cfg)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "http://localhost:8081", cfg.HubSpot.BaseURL)
	assert.Equal(t, 5000, cfg.HubSpot.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(cfg *Config) {}, wantErr: false},
		{name: "missing token is allowed", mutate: func(cfg *Config) { cfg.HubSpot.AccessToken = "" }, wantErr: false},
		{name: "zero port rejected", mutate: func(cfg *Config) { cfg.Server.Port = 0 }, wantErr: true},
		{name: "port out of range", mutate: func(cfg *Config) { cfg.Server.Port = 70000 }, wantErr: true},
		{name: "empty base url rejected", mutate: func(cfg *Config) { cfg.HubSpot.BaseURL = "" }, wantErr: true},
		{name: "non-positive timeout rejected", mutate: func(cfg *Config) { cfg.HubSpot.Timeout = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			applyDefaults(&cfg)
			tt.mutate(&cfg)

			err := validateConfig(&cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHubSpotConfigured(t *testing.T) {
	assert.False(t, HubSpotConfig{}.Configured())
	assert.True(t, HubSpotConfig{AccessToken: "pat-na1-xxxx"}.Configured())
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 30*time.Second, GetDuration(30000))
	assert.Equal(t, time.Duration(0), GetDuration(0))
}
