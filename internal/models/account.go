// Package models defines the helpdesk entities and their fixed catalogs.
package models

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Account is a registered user. Mobile is the natural login key and must be
// unique across the collection. The password is never stored: PasswordSalt
// and PasswordVerifier hold the argon2id-derived credential material.
type Account struct {
	ID               string    `json:"id"`
	Mobile           string    `json:"mobile"`
	Username         string    `json:"username"`
	PasswordSalt     []byte    `json:"passwordSalt"`
	PasswordVerifier []byte    `json:"passwordVerifier"`
	Role             Role      `json:"role"`
	CreatedAt        time.Time `json:"createdAt"`
}
