package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Equal(t, "helpdesk-state", cfg.StateDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 24*time.Hour, cfg.SessionTokenValidity)
	assert.Equal(t, 10*time.Second, cfg.SMSTimeout)
	assert.NotEmpty(t, cfg.SMSGatewayURL)
}

func TestEnvOverlay(t *testing.T) {
	t.Setenv("HELPDESK_STATE_DIR", "/tmp/hd-state")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ADMIN_MOBILE", "9876543210")
	t.Setenv("SESSION_TOKEN_VALIDITY", "45m")
	t.Setenv("SMS_TIMEOUT", "bogus")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, "/tmp/hd-state", cfg.StateDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "9876543210", cfg.AdminMobile)
	assert.Equal(t, 45*time.Minute, cfg.SessionTokenValidity)
	// unparsable duration keeps the default
	assert.Equal(t, 10*time.Second, cfg.SMSTimeout)
}

func TestJsonConfigAcceptsDurationStrings(t *testing.T) {
	var jc JsonConfig
	require.NoError(t, json.Unmarshal([]byte(`{
		"state_dir": "/var/lib/helpdesk",
		"session_token_validity": "12h",
		"sms_timeout": 5000000000
	}`), &jc))

	assert.Equal(t, "/var/lib/helpdesk", jc.StateDir)
	assert.Equal(t, 12*time.Hour, jc.SessionTokenValidity.Duration)
	assert.Equal(t, 5*time.Second, jc.SMSTimeout.Duration)
}
