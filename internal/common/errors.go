// Package common defines shared constants and sentinel errors used across
// helpdesk components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound         = errors.New("not found")
	ErrDuplicateAccount = errors.New("mobile number already registered")

	// Auth errors.
	ErrIncorrectCredential = errors.New("incorrect credential")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNoActiveSession     = errors.New("no active session")
	ErrInvalidToken        = errors.New("invalid token")

	// Notifier errors.
	ErrNotifierDisabled      = errors.New("sms notifications are disabled")
	ErrNotifierNotConfigured = errors.New("sms notifier is not configured")
	ErrNotifierDelivery      = errors.New("sms delivery failed")
)
