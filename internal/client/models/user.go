// Package models defines the client-side records persisted by LoanKeeper:
// users, sessions, loans with their payments, and the derived views computed
// from them.
package models

import "time"

// User is a credential store record. The username is the map key under which
// it is stored, so it is not repeated in the JSON body.
type User struct {
	Password  string    `json:"password"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is the currently authenticated user.
type Session struct {
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	LoginTime time.Time `json:"loginTime"`
}
