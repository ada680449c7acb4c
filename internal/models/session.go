package models

import "time"

// Session is the currently authenticated account plus its access token.
// At most one session exists per process; logging in replaces it entirely.
type Session struct {
	Account  Account   `json:"account"`
	Token    string    `json:"token"`
	IssuedAt time.Time `json:"issuedAt"`
}
