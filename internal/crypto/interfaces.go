// Package crypto holds the client-side cryptography of zkdrive: the
// primitive layer (key derivation, chunk encryption, RSA-OAEP key wrapping,
// BLAKE2b hashing, CSPRNG generators) and the key hierarchy built on it.
//
// Nothing in this package performs I/O or keeps state between calls. Every
// failure aborts the call and no partial key or plaintext is returned.
package crypto

import "github.com/MKhiriev/go-zk-drive/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService builds and unwinds the key hierarchy.
//
// Key flow:
//
//	accountKey = DeriveAccountKey(identifier, password)       login/registration
//	proof      = DeriveLoginProof(accountKey, password)       sent to the server
//	wrapped    = WrapPrivateKey(priv, accountKey)             stored on the server
//	vaultKey   = DeriveVaultKey(vaultPassword)                local vault
//	itemKey    = UnwindKeySequence(priv, sequence, check)     nested folders
type KeyChainService interface {
	// GenerateUserKeyPair creates a fresh RSA-2048 identity key pair.
	GenerateUserKeyPair() (models.UserKeyPair, error)

	// GenerateItemKey returns a random 256-bit item key.
	GenerateItemKey() ([]byte, error)

	// WrapPrivateKey seals a PKCS#8 private key under wrappingKey.
	WrapPrivateKey(privateKey, wrappingKey []byte) ([]byte, error)

	// UnwrapPrivateKey opens a blob produced by WrapPrivateKey and checks
	// that the result parses as an RSA private key.
	UnwrapPrivateKey(wrapped, wrappingKey []byte) ([]byte, error)

	// WrapItemKey seals itemKey under a parent symmetric key; the result is
	// one envelope of a key sequence.
	WrapItemKey(parentKey, itemKey []byte) ([]byte, error)

	// WrapItemKeyForRecipient wraps itemKey under an SPKI public key.
	WrapItemKeyForRecipient(publicKey, itemKey []byte) ([]byte, error)

	// UnwrapItemKey opens an item key wrapped under the caller's public key.
	UnwrapItemKey(privateKey, wrapped []byte) ([]byte, error)

	// DeriveAccountKey derives the transient account key with Argon2id over
	// password, salted by a BLAKE2b hash of identifier.
	DeriveAccountKey(identifier, password string) ([]byte, error)

	// DeriveLoginProof derives the credential sent to the server in place of
	// the password.
	DeriveLoginProof(accountKey []byte, password string) ([]byte, error)

	// DeriveVaultKey derives the local vault wrapping key. An empty password
	// selects the fixed device key.
	DeriveVaultKey(vaultPassword string) ([]byte, error)

	// DeriveSendKey derives a PBKDF2 key for a password-protected send. A nil
	// salt is replaced by a fresh random one; the salt used is returned.
	DeriveSendKey(secret string, salt []byte) (key []byte, usedSalt []byte, err error)

	// UnwindKeySequence recovers the item key at the end of seq and accepts
	// it only if check passes. A sequence cut short at the tail still opens,
	// so check is required. Any failure yields [ErrKeyChain]; intermediate
	// keys are never returned.
	UnwindKeySequence(privateKey []byte, seq models.KeySequence, check KeyCheck) ([]byte, error)
}

// KeyCheck confirms that key is the item key a caller expects.
type KeyCheck func(key []byte) error

// SealedWith returns a [KeyCheck] that opens blob, typically the item's
// encrypted name, with the candidate key.
func SealedWith(blob []byte) KeyCheck {
	return func(key []byte) error {
		_, err := DecryptChunk(key, blob)
		return err
	}
}
