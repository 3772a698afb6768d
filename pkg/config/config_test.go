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

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, 10*time.Second, cfg.FormBackend.Timeout)
	assert.Equal(t, "entry.998475948", cfg.FormBackend.NameField)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 5, cfg.SubmitRateBurst)
	assert.Empty(t, cfg.TrustedProxies)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("PORT", ":9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CONTACT_FORM_ENDPOINT", "https://forms.example.com/contact")
	t.Setenv("FORM_BACKEND_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8,192.168.1.1")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://forms.example.com/contact", cfg.FormBackend.ContactEndpoint)
	assert.Equal(t, 3*time.Second, cfg.FormBackend.Timeout)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.1"}, cfg.TrustedProxies)
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	t.Setenv("FORM_BACKEND_TIMEOUT", "soon")

	_, err := LoadConfig()
	assert.Error(t, err)
}
