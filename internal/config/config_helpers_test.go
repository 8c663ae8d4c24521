package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"unset", "", 256},
		{"valid", "1024", 1024},
		{"negative", "-10", -10},
		{"zero", "0", 0},
		{"not a number", "lots", 256},
		{"float", "42.5", 256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SESSION_CACHE_SIZE", tt.value)
			assert.Equal(t, tt.want, getEnvAsInt("SESSION_CACHE_SIZE", 256))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"unset", "", 30 * time.Minute},
		{"minutes", "10m", 10 * time.Minute},
		{"compound", "1h30m45s", time.Hour + 30*time.Minute + 45*time.Second},
		{"milliseconds", "500ms", 500 * time.Millisecond},
		{"invalid", "soon", 30 * time.Minute},
		{"number without unit", "100", 30 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SESSION_IDLE_TTL", tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration("SESSION_IDLE_TTL", 30*time.Minute))
		})
	}
}

func TestGetEnvAsList(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		t.Setenv("TRUSTED_PROXIES", "")
		assert.Nil(t, getEnvAsList("TRUSTED_PROXIES"))
	})

	t.Run("splits and trims entries", func(t *testing.T) {
		t.Setenv("TRUSTED_PROXIES", " 10.0.0.1, 10.0.0.2 ,10.0.0.3")
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"}, getEnvAsList("TRUSTED_PROXIES"))
	})

	t.Run("drops empty entries", func(t *testing.T) {
		t.Setenv("TRUSTED_PROXIES", ",10.0.0.1,,")
		assert.Equal(t, []string{"10.0.0.1"}, getEnvAsList("TRUSTED_PROXIES"))
	})
}
