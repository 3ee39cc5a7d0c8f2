package domain

import "time"

// User represents a registered user in the system
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Session couples an opaque token with the user it identifies
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// UserRepository persists the registered-user collection and the most
// recent session
type UserRepository interface {
	GetByEmail(email string) (*User, error)
	Create(user *User) (*User, error)
	SaveSession(session *Session) error
	CurrentSession() (*Session, error)
	ClearSession() error
}
