package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 465, cfg.SMTPPort)
	assert.Equal(t, time.Second, cfg.SendDelay)
	assert.Equal(t, 10*time.Second, cfg.SMTPConnTimeout)
	assert.Equal(t, 5*time.Second, cfg.SMTPHelloTimeout)
	assert.False(t, cfg.Production())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SMTP_PORT", "587")
	t.Setenv("SEND_DELAY_MS", "0")
	t.Setenv("ALLOWED_ORIGIN", "https://a.example, https://b.example")

	cfg := Load()
	assert.Equal(t, "8081", cfg.Port)
	assert.True(t, cfg.Production())
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Zero(t, cfg.SendDelay)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}
