package models

import "time"

// User is a registered account. Password material never leaves the server
// in JSON form.
type User struct {
	ID           string      `json:"id"`
	UserName     string      `json:"username"`
	Salt         []byte      `json:"-"`
	PasswordHash []byte      `json:"-"`
	Role         string      `json:"role"`
	Logins       []time.Time `json:"logins,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
}
