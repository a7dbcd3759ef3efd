package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "https://api.groq.com/openai/v1/chat/completions", cfg.Groq.APIURL)
	assert.Equal(t, "meta-llama/llama-4-maverick-17b-128e-instruct", cfg.Groq.Model)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, "./database.sqlite", cfg.Database.Path)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 100, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("GROQ_API_KEY", "gsk_test_key_1234")
	t.Setenv("GROQ_MODEL", "other-model")
	t.Setenv("CACHE_TTL", "30m")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "gsk_test_key_1234", cfg.Groq.APIKey)
	assert.Equal(t, "other-model", cfg.Groq.Model)
	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:    ServerConfig{Port: 4000},
			Groq:      GroqConfig{APIURL: "http://x", Model: "m"},
			Cache:     CacheConfig{TTL: time.Hour},
			RateLimit: RateLimitConfig{Enabled: true, Requests: 10, Window: time.Minute},
		}
	}

	t.Run("valid config passes", func(t *testing.T) {
		assert.NoError(t, validateConfig(valid()))
	})

	t.Run("empty api key is allowed", func(t *testing.T) {
		cfg := valid()
		cfg.Groq.APIKey = ""
		assert.NoError(t, validateConfig(cfg), "missing credential degrades to mock mode, not a startup failure")
	})

	cases := map[string]func(*Config){
		"missing port":       func(c *Config) { c.Server.Port = 0 },
		"missing api url":    func(c *Config) { c.Groq.APIURL = "" },
		"missing model":      func(c *Config) { c.Groq.Model = "" },
		"zero cache ttl":     func(c *Config) { c.Cache.TTL = 0 },
		"bad limit requests": func(c *Config) { c.RateLimit.Requests = 0 },
		"bad limit window":   func(c *Config) { c.RateLimit.Window = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			mutate(cfg)
			assert.Error(t, validateConfig(cfg))
		})
	}
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "****", MaskAPIKey(""))
	assert.Equal(t, "****", MaskAPIKey("short"))
	assert.Equal(t, "gsk_...wxyz", MaskAPIKey("gsk_abcdefgh_wxyz"))
}
