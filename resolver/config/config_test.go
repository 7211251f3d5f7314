package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	raw := []byte(`
env: dev
local:
  guard:
    max_distance_miles: 5
dev:
  guard:
    min_trust_score: 90
  cache:
    ttl_seconds: 60
  backend:
    base_url: https://inventory.example.com/
    retries: -3
  activity:
    default_limit: 500
    max_limit: 50
`)

	testCases := []struct {
		name   string
		env    string
		verify func(t *testing.T, c *Config)
	}{
		{
			name: "env_from_file",
			env:  "",
			verify: func(t *testing.T, c *Config) {
				assert.Equal(t, "dev", c.Env)
				assert.Equal(t, 90, c.Guard.MinTrustScore)
				assert.Equal(t, 30.0, c.Guard.MinMargin)
				assert.Equal(t, time.Minute, c.CacheTTL())
				assert.Equal(t, "https://inventory.example.com", c.Backend.BaseURL)
				assert.Equal(t, 0, c.Backend.Retries)
				assert.Equal(t, 50, c.Activity.DefaultLimit)
			},
		},
		{
			name: "explicit_env_wins",
			env:  "local",
			verify: func(t *testing.T, c *Config) {
				assert.Equal(t, "local", c.Env)
				assert.Equal(t, 5.0, c.GuardConfig().MaxDistanceMiles)
				assert.Equal(t, 5*time.Minute, c.CacheTTL())
				assert.False(t, c.Backend.Enabled, "backend without base url is disabled")
			},
		},
		{
			name: "defaults_applied",
			env:  "prod",
			verify: func(t *testing.T, c *Config) {
				g := c.GuardConfig()
				assert.Equal(t, 30.0, g.MinMargin)
				assert.Equal(t, 80, g.MinTrustScore)
				assert.Equal(t, 480, g.MaxETAMinutes)
				assert.Equal(t, 50.0, g.MaxDistanceMiles)
				assert.Equal(t, "/v1/offers", c.Backend.PrimaryPath)
				assert.Equal(t, "/v1/offers/nearby", c.Backend.FallbackPath)
				assert.Equal(t, 5*time.Second, c.Backend.Timeout())
				assert.Equal(t, 10*time.Second, c.Backend.Budget())
				assert.Equal(t, 0.8, c.Backend.DefaultConfidence)
				assert.Equal(t, 20, c.Backend.Burst)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Load(raw, tc.env)
			require.NoError(t, err)
			tc.verify(t, c)
		})
	}
}

func TestLoad_ExplicitZeroGuard(t *testing.T) {
	raw := []byte(`
prod:
  guard:
    min_margin: 0
    min_trust_score: 0
  backend:
    budget_seconds: 3
`)

	c, err := Load(raw, "prod")
	require.NoError(t, err)

	g := c.GuardConfig()
	assert.Equal(t, 0.0, g.MinMargin)
	assert.Equal(t, 0, g.MinTrustScore)
	assert.Equal(t, 480, g.MaxETAMinutes, "absent key keeps the default")
	assert.Equal(t, 50.0, g.MaxDistanceMiles)
	assert.Equal(t, 3*time.Second, c.Backend.Budget())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load([]byte("env: staging"), "")
	assert.ErrorContains(t, err, "unknown env")

	_, err = Load([]byte("local: ["), "")
	assert.ErrorContains(t, err, "parse config")

	testCases := []struct {
		name          string
		doc           string
		expectedError string
	}{
		{
			name:          "negative_margin",
			doc:           "local:\n  guard:\n    min_margin: -1\n",
			expectedError: "guard.min_margin",
		},
		{
			name:          "trust_above_range",
			doc:           "local:\n  guard:\n    min_trust_score: 101\n",
			expectedError: "guard.min_trust_score",
		},
		{
			name:          "negative_distance",
			doc:           "local:\n  guard:\n    max_distance_miles: -5\n",
			expectedError: "guard.max_distance_miles",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load([]byte(tc.doc), "local")
			assert.ErrorContains(t, err, tc.expectedError)
		})
	}
}

func TestDefault(t *testing.T) {
	for _, env := range []string{"local", "dev", "prod"} {
		c, err := Default(env)
		require.NoError(t, err, env)
		assert.True(t, c.Backend.Enabled, env)
		assert.Equal(t, 300, c.Cache.TTLSeconds, env)
	}
}
