package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/helpdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   state directory for the persisted snapshots
//	-l string   log level (debug | info | warn | error)
//	-s string   session token HMAC secret
//	-a string   mobile number granted the admin role
//	-t int      session token validity, minutes
//	-g string   SMS gateway URL
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with the -c/-config flags handled by
// the JSON overlay.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-s", "-a", "-t", "-g"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.StateDir, "d", config.StateDir, "state directory")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.AdminMobile, "a", config.AdminMobile, "admin mobile number")
	fs.StringVar(&config.SMSGatewayURL, "g", config.SMSGatewayURL, "sms gateway url")

	tokenValidity := fs.Int("t", int(config.SessionTokenValidity.Minutes()), "session token validity (in minutes)")

	if err := fs.Parse(args); err != nil {
		return
	}

	config.SessionTokenValidity = time.Duration(*tokenValidity) * time.Minute
}
