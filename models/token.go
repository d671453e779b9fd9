package models

import "time"

// Token is the bearer token the server issues on login.
type Token struct {
	// Raw is the token as received, without the "Bearer " prefix.
	Raw string

	// ExpiresAt is read from the "exp" claim when the token is a JWT; it is
	// zero for opaque tokens.
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry in the past.
func (t Token) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && !now.Before(t.ExpiresAt)
}

// String returns the raw token.
func (t Token) String() string {
	return t.Raw
}

// LocalSession is the login state persisted between CLI invocations.
type LocalSession struct {
	Identifier string
	Token      Token
}
