package domain

import "time"

// User is the server-side account record.
type User struct {
	ID           string                 `json:"id"`
	UserName     string                 `json:"userName"`
	Email        string                 `json:"email"`
	PasswordHash string                 `json:"-"`
	Settings     map[string]interface{} `json:"settings,omitempty"`
	CreatedAt    time.Time              `json:"createdAt"`
}

// Session is the client's record of the signed-in identity. It exists only
// after a successful sign-in or sign-up and is persisted across restarts.
type Session struct {
	UserID   string                 `json:"userId"`
	UserName string                 `json:"userName"`
	Email    string                 `json:"email"`
	Settings map[string]interface{} `json:"settings,omitempty"`
}

// SessionFromUser strips server-only fields from a user record.
func SessionFromUser(u User) Session {
	return Session{
		UserID:   u.ID,
		UserName: u.UserName,
		Email:    u.Email,
		Settings: u.Settings,
	}
}
