package model

import "time"

// Credential is the single cached session credential for the remote node API.
// It mirrors one response cookie from the login endpoint: the cookie name and
// its opaque value, plus the moment the pair stops being usable.
//
// The JSON field names match the legacy token file layout so an existing
// cache written by earlier tooling is picked up as-is.
type Credential struct {
	CookieName string    `json:"cookie_name"`
	Token      string    `json:"token"`
	ExpiresAt  time.Time `json:"expires"`
}

// Valid reports whether the credential is usable at the given instant.
// A record is usable iff now is strictly before its expiry.
func (c Credential) Valid(now time.Time) bool {
	if c.CookieName == "" || c.Token == "" {
		return false
	}
	return now.Before(c.ExpiresAt)
}

// CookieHeader renders the credential as a Cookie request header value.
func (c Credential) CookieHeader() string {
	return c.CookieName + "=" + c.Token
}
