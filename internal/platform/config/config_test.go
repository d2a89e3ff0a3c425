package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.APIPort)
	assert.Equal(t, 240*time.Hour, cfg.JWTExp)
	assert.Equal(t, "2.0", cfg.JudgeCPUTimeSec)
	assert.Equal(t, 262144, cfg.JudgeMemoryKb)
	assert.Equal(t, time.Minute, cfg.JudgeCooldown)
	assert.Equal(t, 50, cfg.DefaultPageSize)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("API_PORT", "9000")
	t.Setenv("JWT_EXPIRATION_HOURS", "1")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/codemore")
	t.Setenv("JUDGE_API_KEY", "judge-key")
	t.Setenv("JUDGE_COOLDOWN_SECONDS", "5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("DEFAULT_PAGE_SIZE", "not-a-number")

	cfg := Load()

	assert.Equal(t, "9000", cfg.APIPort)
	assert.Equal(t, time.Hour, cfg.JWTExp)
	assert.Equal(t, "postgres://u:p@db:5432/codemore", cfg.DBConnStr)
	assert.Equal(t, "judge-key", cfg.JudgeAPIKey)
	assert.Equal(t, 5*time.Second, cfg.JudgeCooldown)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 50, cfg.DefaultPageSize)
}
