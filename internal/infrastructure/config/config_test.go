package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("loads default configuration", func(t *testing.T) {
		cfg, err := Load()

		assert.NoError(t, err)
		assert.NotNil(t, cfg)

		// Check server defaults
		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Server.Mode)

		// Check classifier defaults
		assert.Equal(t, DefaultEndpoint, cfg.Classifier.Endpoint)
		assert.Equal(t, 30*time.Second, cfg.Classifier.Timeout)

		// Check ui defaults
		assert.True(t, cfg.UI.DetailsToggle)
		assert.Equal(t, "last_writer_wins", cfg.UI.StaleResponses)

		// Check log defaults
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "", cfg.Log.File)
	})

	t.Run("reads from environment variables", func(t *testing.T) {
		t.Setenv("PHISHGUARD_SERVER_PORT", "9090")
		t.Setenv("PHISHGUARD_CLASSIFIER_ENDPOINT", "http://localhost:5000/predict")
		t.Setenv("PHISHGUARD_CLASSIFIER_TIMEOUT", "5s")
		t.Setenv("PHISHGUARD_UI_DETAILS_TOGGLE", "false")
		t.Setenv("PHISHGUARD_UI_STALE_RESPONSES", "drop_stale")
		t.Setenv("PHISHGUARD_LOG_LEVEL", "debug")

		cfg, err := Load()

		assert.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "http://localhost:5000/predict", cfg.Classifier.Endpoint)
		assert.Equal(t, 5*time.Second, cfg.Classifier.Timeout)
		assert.False(t, cfg.UI.DetailsToggle)
		assert.Equal(t, "drop_stale", cfg.UI.StaleResponses)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("rejects an invalid endpoint", func(t *testing.T) {
		t.Setenv("PHISHGUARD_CLASSIFIER_ENDPOINT", "not a url")

		cfg, err := Load()

		assert.ErrorIs(t, err, ErrInvalidEndpoint)
		assert.Nil(t, cfg)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		expected error
	}{
		{name: "https endpoint", endpoint: "https://example.com/predict"},
		{name: "http endpoint with port", endpoint: "http://127.0.0.1:5000/predict"},
		{name: "empty", endpoint: "", expected: ErrMissingEndpoint},
		{name: "blank", endpoint: "   ", expected: ErrMissingEndpoint},
		{name: "relative path", endpoint: "/predict", expected: ErrInvalidEndpoint},
		{name: "unsupported scheme", endpoint: "ftp://example.com/predict", expected: ErrInvalidEndpoint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Classifier: ClassifierConfig{Endpoint: tt.endpoint}}

			err := cfg.Validate()

			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
