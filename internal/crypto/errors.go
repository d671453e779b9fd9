// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors returned by the primitive layer and [KeyChainService].
// Callers match them with [errors.Is]; the wrapped message carries the
// low-level cause for logs only.
var (
	// ErrKeyDerivation is returned when a password-based derivation cannot
	// run, e.g. because the Argon2id parameters are invalid.
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrEncryption is returned when a symmetric or asymmetric encryption
	// step fails. No partial ciphertext is ever returned with it.
	ErrEncryption = errors.New("encryption failed")

	// ErrAuthentication is returned when a ciphertext fails authentication.
	// It never distinguishes a near match from a total mismatch.
	ErrAuthentication = errors.New("authentication failed")

	// ErrKeyChain is returned when any envelope of a key sequence cannot be
	// unwrapped. No intermediate key is exposed.
	ErrKeyChain = errors.New("key chain unwind failed")

	// ErrInvalidKey is returned when DER key material cannot be parsed or is
	// not an RSA key.
	ErrInvalidKey = errors.New("invalid key material")

	// ErrInvalidRange is returned by [RandomInt] when max < min.
	ErrInvalidRange = errors.New("invalid random range")

	// ErrNoCharacterClass is returned by [RandomString] when every character
	// class is disabled.
	ErrNoCharacterClass = errors.New("no character class selected")

	// ErrEmptyWordlist is returned by [RandomPassphrase] when the wordlist is
	// empty or the word count is not positive.
	ErrEmptyWordlist = errors.New("wordlist is empty")
)
