// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserKeyPair is a user's identity key pair in DER form.
//
// The private key never leaves the client unwrapped: it is only ever
// transmitted or persisted after being wrapped by a symmetric key.
type UserKeyPair struct {
	// PublicKey is the SPKI (PKIX) DER encoding of the RSA public key.
	PublicKey []byte

	// PrivateKey is the PKCS#8 DER encoding of the RSA private key.
	PrivateKey []byte
}

// IsZero reports whether neither half of the pair is set.
func (k UserKeyPair) IsZero() bool {
	return len(k.PublicKey) == 0 && len(k.PrivateKey) == 0
}

// KeySequence is an ordered chain of wrapped-key envelopes leading from an
// identity private key down to one item key.
//
// Element 0 is wrapped under the identity public key (RSA-OAEP); element i
// is wrapped (AES-GCM) under the key recovered from element i-1.
type KeySequence [][]byte

// VaultRecordID identifies one of the fixed records of the local key vault.
type VaultRecordID int

// Fixed record identifiers of the local key vault. A complete vault holds
// all three.
const (
	VaultRecordPrivateKey        VaultRecordID = 1
	VaultRecordPublicKey         VaultRecordID = 2
	VaultRecordPasswordProtected VaultRecordID = 3
)

// VaultRecord is the validated content of the local key vault.
type VaultRecord struct {
	// WrappedPrivateKey is the private key sealed under the vault key.
	WrappedPrivateKey []byte

	// PublicKey is stored as-is; it is not secret.
	PublicKey []byte

	// PasswordProtected reports whether the vault key was derived from a
	// vault password rather than the fixed device key.
	PasswordProtected bool
}

// WordlistID identifies a stored passphrase wordlist.
type WordlistID int

// Fixed wordlist record identifiers.
const (
	WordlistLong  WordlistID = 1
	WordlistShort WordlistID = 2
)
