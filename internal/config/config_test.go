package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("LLM_API_KEY", "test-key")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("LLM_BASE_URL", "")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("JWT_EXPIRY_HOURS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mutlu_baslangic", cfg.DBName)
	assert.Equal(t, "https://llm.kindo.ai/v1", cfg.LLMBaseURL)
	assert.Equal(t, "gpt-4o-mini", cfg.LLMModel)
	assert.Equal(t, "*", cfg.CORSOrigins)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigMissingRequired(t *testing.T) {
	cases := []string{"MONGODB_URI", "JWT_SECRET", "LLM_API_KEY"}
	for _, missing := range cases {
		t.Run(missing, func(t *testing.T) {
			setRequired(t)
			t.Setenv(missing, "")

			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), missing)
		})
	}
}

func TestLoadConfigJWTExpiry(t *testing.T) {
	setRequired(t)

	t.Setenv("JWT_EXPIRY_HOURS", "72")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 72*time.Hour, cfg.JWTTTL)

	t.Setenv("JWT_EXPIRY_HOURS", "abc")
	_, err = LoadConfig()
	assert.Error(t, err)

	t.Setenv("JWT_EXPIRY_HOURS", "-1")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigProduction(t *testing.T) {
	setRequired(t)
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}
