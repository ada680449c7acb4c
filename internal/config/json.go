package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/helpdesk/internal/flagx"
	"github.com/dmitrijs2005/helpdesk/internal/timex"
)

// JsonConfig is the intermediate DTO for reading JSON configuration files.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "24h" and integer nanoseconds. After unmarshalling,
// its fields are copied into the runtime Config.
type JsonConfig struct {
	StateDir             string         `json:"state_dir"`
	LogLevel             string         `json:"log_level"`
	SecretKey            string         `json:"secret_key"`
	AdminMobile          string         `json:"admin_mobile"`
	SessionTokenValidity timex.Duration `json:"session_token_validity"`
	SMSGatewayURL        string         `json:"sms_gateway_url"`
	SMSTimeout           timex.Duration `json:"sms_timeout"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config command-line flags. When neither flag is set, no file is
// loaded. Only non-zero values from the file are copied over.
func parseJson(config *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StateDir != "" {
		config.StateDir = jc.StateDir
	}
	if jc.LogLevel != "" {
		config.LogLevel = jc.LogLevel
	}
	if jc.SecretKey != "" {
		config.SecretKey = jc.SecretKey
	}
	if jc.AdminMobile != "" {
		config.AdminMobile = jc.AdminMobile
	}
	if jc.SessionTokenValidity.Duration != 0 {
		config.SessionTokenValidity = jc.SessionTokenValidity.Duration
	}
	if jc.SMSGatewayURL != "" {
		config.SMSGatewayURL = jc.SMSGatewayURL
	}
	if jc.SMSTimeout.Duration != 0 {
		config.SMSTimeout = jc.SMSTimeout.Duration
	}
}
