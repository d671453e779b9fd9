package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader carries the hex HMAC-SHA256 of a request body.
const HashHeader = "HashSHA256"

// Signer computes keyed HMAC-SHA256 signatures over request bodies.
//
// Hash instances are pooled to avoid an allocation per request. A nil
// *Signer is valid and produces no signature, so callers can skip the
// "is signing enabled" check.
type Signer struct {
	pool sync.Pool
}

// NewSigner returns a Signer keyed with hashKey, or nil when hashKey is empty.
//
// Example usage:
//
//	s := utils.NewSigner(cfg.App.HashKey)
//	req.SetHeader(utils.HashHeader, s.Sign(body))
func NewSigner(hashKey string) *Signer {
	if hashKey == "" {
		return nil
	}

	key := []byte(hashKey)
	return &Signer{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Sum returns the raw HMAC-SHA256 digest of data.
func (s *Signer) Sum(data []byte) []byte {
	if s == nil {
		return nil
	}

	h := s.pool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	s.pool.Put(h)

	return sum
}

// Sign returns the hex-encoded HMAC-SHA256 of data, or "" for a nil Signer.
func (s *Signer) Sign(data []byte) string {
	if s == nil {
		return ""
	}
	return hex.EncodeToString(s.Sum(data))
}

// Verify reports whether signature is the hex HMAC of data.
func (s *Signer) Verify(data []byte, signature string) bool {
	if s == nil {
		return false
	}

	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(got, s.Sum(data))
}
