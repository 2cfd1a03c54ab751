package entity

import "time"

// Session binds an opaque bearer token (the map key in Document.Sessions)
// to a user until ExpiresAt. Possession of the token is sufficient to
// authenticate as its owner.
type Session struct {
	UserId    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
