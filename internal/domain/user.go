package domain

import "time"

// User is an account holder. The (Username, Tag) pair is unique and renders as "name#0042".
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Username      string    `json:"username"`
	Tag           string    `json:"tag"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// DisplayName returns the username with its discriminator tag.
func (u User) DisplayName() string {
	return u.Username + "#" + u.Tag
}

// Session is a server-side login record; tokens are only valid while it exists.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// Expired reports whether the session has lapsed at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
