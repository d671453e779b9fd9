package service

import (
	"bytes"
	"sync"
	"time"

	"github.com/MKhiriev/go-zk-drive/internal/crypto"
	"github.com/MKhiriev/go-zk-drive/models"
)

// Session holds the unlocked identity of one user. It is created by
// AuthService and passed explicitly to the transfer and share services; no
// key material lives in package state.
//
// Close zeroes the private key. Every accessor returns ErrSessionClosed
// afterwards.
type Session struct {
	mu sync.RWMutex

	identifier string
	keys       models.UserKeyPair
	token      models.Token
	closed     bool
}

// NewSession takes ownership of keys; the caller must not modify them.
func NewSession(identifier string, keys models.UserKeyPair, token models.Token) *Session {
	return &Session{identifier: identifier, keys: keys, token: token}
}

func (s *Session) Identifier() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identifier
}

// PublicKey returns a copy of the SPKI DER public key.
func (s *Session) PublicKey() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrSessionClosed
	}
	return bytes.Clone(s.keys.PublicKey), nil
}

// WithPrivateKey calls fn with the PKCS#8 private key. fn must not retain the
// slice.
func (s *Session) WithPrivateKey(fn func(privateKey []byte) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return ErrSessionClosed
	}
	return fn(s.keys.PrivateKey)
}

// Token returns the server token, which is empty for a vault-only session.
func (s *Session) Token() models.Token {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken replaces the server token.
func (s *Session) SetToken(token models.Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Usable reports whether the session is open and its token, if any, has not
// expired at now.
func (s *Session) Usable(now time.Time) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch {
	case s.closed:
		return ErrSessionClosed
	case s.token.Expired(now):
		return ErrTokenExpired
	}
	return nil
}

// Close zeroes the key material. It is safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	crypto.Zero(s.keys.PrivateKey)
	s.keys = models.UserKeyPair{}
	s.token = models.Token{}
	s.closed = true
}
