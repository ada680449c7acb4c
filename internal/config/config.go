// Package config handles configuration for the helpdesk CLI, including
// defaults, environment overlay, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the helpdesk.
//
// Fields:
//   - StateDir: directory holding the persisted snapshots.
//   - LogLevel: minimum level for the structured log ("debug".."error").
//   - SecretKey: HMAC secret for signing session tokens (HS256). Do not use
//     the development default in real deployments.
//   - AdminMobile: the mobile number that holds the admin role. The account
//     registered under it is granted admin on registration and on every
//     snapshot load. Empty means no admin is provisioned.
//   - SessionTokenValidity: lifetime of a minted session token.
//   - SMSGatewayURL: endpoint of the SMS provider the notifier posts to.
//   - SMSTimeout: per-request timeout for the SMS gateway.
type Config struct {
	StateDir             string
	LogLevel             string
	SecretKey            string
	AdminMobile          string
	SessionTokenValidity time.Duration
	SMSGatewayURL        string
	SMSTimeout           time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: the secret key default is insecure and should be overridden.
func (c *Config) LoadDefaults() {
	c.StateDir = "helpdesk-state"
	c.LogLevel = "info"
	c.SecretKey = "secretKey"
	c.SessionTokenValidity = 24 * time.Hour
	c.SMSGatewayURL = "https://www.fast2sms.com/dev/bulkV2"
	c.SMSTimeout = 10 * time.Second
}

// Load builds a Config by applying defaults, then overlaying values from the
// environment (including an optional .env file), an optional JSON file
// (-c/-config), and finally command-line flags. Later sources win.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
