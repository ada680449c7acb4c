package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from the environment. A .env file in the
// working directory is loaded first; real environment variables win over it.
//
// Recognized variables:
//
//	HELPDESK_STATE_DIR       snapshot directory
//	LOG_LEVEL                debug | info | warn | error
//	SECRET_KEY               session token HMAC secret
//	ADMIN_MOBILE             mobile number granted the admin role
//	SESSION_TOKEN_VALIDITY   duration string, e.g. "24h"
//	SMS_GATEWAY_URL          SMS provider endpoint
//	SMS_TIMEOUT              duration string, e.g. "10s"
func parseEnv(config *Config) {
	_ = godotenv.Load(".env")

	config.StateDir = getEnv("HELPDESK_STATE_DIR", config.StateDir)
	config.LogLevel = getEnv("LOG_LEVEL", config.LogLevel)
	config.SecretKey = getEnv("SECRET_KEY", config.SecretKey)
	config.AdminMobile = getEnv("ADMIN_MOBILE", config.AdminMobile)
	config.SMSGatewayURL = getEnv("SMS_GATEWAY_URL", config.SMSGatewayURL)

	if v := os.Getenv("SESSION_TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.SessionTokenValidity = d
		}
	}
	if v := os.Getenv("SMS_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.SMSTimeout = d
		}
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
