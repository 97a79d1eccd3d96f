package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Load_DefaultValues(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "", cfg.OTLPEndpoint)
	assert.Equal(t, "resume-scorer", cfg.OTELServiceName)
	assert.Equal(t, int64(10), cfg.MaxUploadMB)
	assert.Equal(t, "*", cfg.CORSAllowOrigins)
	assert.Equal(t, 30, cfg.RateLimitPerMin)
	assert.Equal(t, 60*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.ServerShutdownTimeout)
	assert.Equal(t, 15*time.Second, cfg.HTTPReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.HTTPWriteTimeout)
	assert.Equal(t, 60*time.Second, cfg.HTTPIdleTimeout)
	assert.Equal(t, 50, cfg.AboutOptimalMin)
	assert.Equal(t, 300, cfg.AboutOptimalMax)
	assert.Equal(t, 450, cfg.FresherWordMin)
	assert.Equal(t, 600, cfg.FresherWordMax)
	assert.Equal(t, 600, cfg.ExperiencedWordMin)
	assert.Equal(t, 800, cfg.ExperiencedWordMax)
}

func TestConfig_Load_CustomValues(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("PORT", "9090")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "otel-collector:4317")
	t.Setenv("OTEL_SERVICE_NAME", "resume-scorer-staging")
	t.Setenv("MAX_UPLOAD_MB", "25")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://app.example.com,https://admin.example.com")
	t.Setenv("RATE_LIMIT_PER_MIN", "120")
	t.Setenv("REQUEST_TIMEOUT", "90s")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "10s")
	t.Setenv("HTTP_READ_TIMEOUT", "5s")
	t.Setenv("HTTP_WRITE_TIMEOUT", "45s")
	t.Setenv("HTTP_IDLE_TIMEOUT", "2m")
	t.Setenv("SCORING_ABOUT_MIN", "40")
	t.Setenv("SCORING_ABOUT_MAX", "250")
	t.Setenv("SCORING_FRESHER_WORD_MIN", "400")
	t.Setenv("SCORING_FRESHER_WORD_MAX", "550")
	t.Setenv("SCORING_EXPERIENCED_WORD_MIN", "550")
	t.Setenv("SCORING_EXPERIENCED_WORD_MAX", "750")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.AppEnv)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "otel-collector:4317", cfg.OTLPEndpoint)
	assert.Equal(t, "resume-scorer-staging", cfg.OTELServiceName)
	assert.Equal(t, int64(25), cfg.MaxUploadMB)
	assert.Equal(t, "https://app.example.com,https://admin.example.com", cfg.CORSAllowOrigins)
	assert.Equal(t, 120, cfg.RateLimitPerMin)
	assert.Equal(t, 90*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.ServerShutdownTimeout)
	assert.Equal(t, 5*time.Second, cfg.HTTPReadTimeout)
	assert.Equal(t, 45*time.Second, cfg.HTTPWriteTimeout)
	assert.Equal(t, 2*time.Minute, cfg.HTTPIdleTimeout)
	assert.Equal(t, 40, cfg.AboutOptimalMin)
	assert.Equal(t, 250, cfg.AboutOptimalMax)
	assert.Equal(t, 400, cfg.FresherWordMin)
	assert.Equal(t, 550, cfg.FresherWordMax)
	assert.Equal(t, 550, cfg.ExperiencedWordMin)
	assert.Equal(t, 750, cfg.ExperiencedWordMax)
}

func TestConfig_IsDev(t *testing.T) {
	testCases := []struct {
		appEnv   string
		expected bool
	}{
		{"dev", true},
		{"DEV", true},
		{"Dev", true},
		{"prod", false},
		{"test", false},
		{"", true}, // default value is "dev"
	}

	for _, tc := range testCases {
		t.Run(tc.appEnv, func(t *testing.T) {
			clearEnvVars(t)
			t.Setenv("APP_ENV", tc.appEnv)

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cfg.IsDev())
		})
	}
}

func TestConfig_IsProd(t *testing.T) {
	testCases := []struct {
		appEnv   string
		expected bool
	}{
		{"prod", true},
		{"PROD", true},
		{"Prod", true},
		{"dev", false},
		{"test", false},
		{"", false},
	}

	for _, tc := range testCases {
		t.Run(tc.appEnv, func(t *testing.T) {
			clearEnvVars(t)
			t.Setenv("APP_ENV", tc.appEnv)

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cfg.IsProd())
		})
	}
}

func TestConfig_IsTest(t *testing.T) {
	testCases := []struct {
		appEnv   string
		expected bool
	}{
		{"test", true},
		{"TEST", true},
		{"dev", false},
		{"prod", false},
	}

	for _, tc := range testCases {
		t.Run(tc.appEnv, func(t *testing.T) {
			clearEnvVars(t)
			t.Setenv("APP_ENV", tc.appEnv)

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cfg.IsTest())
		})
	}
}

func TestConfig_Load_ErrorCases(t *testing.T) {
	testCases := []struct {
		name   string
		envVar string
		value  string
	}{
		{"invalid port", "PORT", "not-a-number"},
		{"invalid upload size", "MAX_UPLOAD_MB", "huge"},
		{"invalid rate limit", "RATE_LIMIT_PER_MIN", "3.5x"},
		{"invalid timeout", "HTTP_READ_TIMEOUT", "fifteen seconds"},
		{"invalid threshold", "SCORING_ABOUT_MIN", "low"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnvVars(t)
			t.Setenv(tc.envVar, tc.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "op=config.Load")
		})
	}
}

func clearEnvVars(t *testing.T) {
	envVars := []string{
		"APP_ENV", "PORT", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_SERVICE_NAME",
		"MAX_UPLOAD_MB", "CORS_ALLOW_ORIGINS", "RATE_LIMIT_PER_MIN",
		"REQUEST_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT", "HTTP_READ_TIMEOUT",
		"HTTP_WRITE_TIMEOUT", "HTTP_IDLE_TIMEOUT",
		"SCORING_ABOUT_MIN", "SCORING_ABOUT_MAX",
		"SCORING_FRESHER_WORD_MIN", "SCORING_FRESHER_WORD_MAX",
		"SCORING_EXPERIENCED_WORD_MIN", "SCORING_EXPERIENCED_WORD_MAX",
	}

	for _, envVar := range envVars {
		require.NoError(t, os.Unsetenv(envVar))
	}
}
