package entity

import "time"

// Session represents a logged-in user's server-side session.
// The ID is the value carried by the browser cookie; everything else
// stays on the server.
type Session struct {
	ID        string    // Random token (64-character hex string)
	UserID    uint      // Associated user ID
	CreatedAt time.Time // Session creation time
	ExpiresAt time.Time // Session expiration time
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
