package domain

import "time"

// User is an editor account. Admins manage accounts and delete bulletins.
type User struct {
	Id           UserId    `json:"id"`
	Email        Email     `json:"email"`
	Name         string    `json:"name,omitempty"`
	Admin        bool      `json:"admin"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
