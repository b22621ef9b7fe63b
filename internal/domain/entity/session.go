// Package entity contains the core business objects of the console,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"encoding/json"
	"time"
)

// SessionKey is the fixed name the persisted session record is stored under.
const SessionKey = "auth-tokens"

// Session is the authenticated dealer's token pair plus cached profile.
// It is owned exclusively by the session store: created on sign-in,
// rewritten on refresh, destroyed on logout or refresh failure.
type Session struct {
	Access        string          `json:"access"`        // Short-lived access token, attached as a Bearer header to every resource call.
	Refresh       string          `json:"refresh"`       // Long-lived refresh token, exchanged for a new pair when the access token goes stale.
	User          json.RawMessage `json:"user"`          // The identity backend's user record, opaque to the console.
	LastRefreshed time.Time       `json:"lastRefreshed"` // When the token pair was last obtained or rotated.
}

// Valid reports whether the session is well formed. Access token and user
// must both be present; a partial session is not a session.
func (s *Session) Valid() bool {
	return s != nil && s.Access != "" && len(s.User) > 0
}
