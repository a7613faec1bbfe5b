package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, "fileshare", cfg.Env.ServiceName)
	assert.Equal(t, 8000, cfg.HTTP.Port)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, PersistenceDriverPostgres, cfg.Persistence.Driver)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 168*time.Hour, cfg.Auth.TokenTTL)
	require.NotNil(t, cfg.OTP)
	assert.Equal(t, 5*time.Minute, cfg.OTP.CodeTTL)
	assert.Equal(t, 3, cfg.OTP.MaxAttempts)
	assert.Equal(t, 6, cfg.OTP.CodeLength)
	assert.Equal(t, time.Minute, cfg.OTP.SweepInterval)
	require.NotNil(t, cfg.Share)
	assert.Equal(t, int64(100*1024*1024), cfg.Share.MaxUploadSize)
	assert.Zero(t, cfg.Share.DefaultTTL)
	assert.Equal(t, 5, cfg.Share.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.Share.RateLimit.Window)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
	assert.Equal(t, SMSProviderLog, cfg.SMS.Provider)
	assert.Equal(t, 256, cfg.QRCode.Size)
	assert.False(t, cfg.Firebase.Enabled())
	require.NotNil(t, cfg.Worker)
	assert.Equal(t, 8085, cfg.Worker.Port)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		OTP:   &OTPConfig{CodeTTL: time.Minute, MaxAttempts: 5},
		Share: &ShareConfig{MaxUploadSize: 1024},
	}

	applyDefaults(cfg)

	assert.Equal(t, time.Minute, cfg.OTP.CodeTTL)
	assert.Equal(t, 5, cfg.OTP.MaxAttempts)
	assert.Equal(t, int64(1024), cfg.Share.MaxUploadSize)
}
