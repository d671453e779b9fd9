// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/hex"
	"fmt"

	"github.com/MKhiriev/go-zk-drive/internal/config"
	"github.com/MKhiriev/go-zk-drive/models"
)

const (
	vaultSaltLabel = "ZK_VAULT_KEY"
	deviceKeyLabel = "ZK_DEVICE_KEY"
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	argon            ArgonParams
	pbkdf2Iterations int
}

// NewKeyChainService constructs a [KeyChainService] from the crypto section
// of the client configuration. Zero values fall back to
// [DefaultArgonParams] and [DefaultPBKDF2Iterations].
func NewKeyChainService(cfg config.ClientCrypto) KeyChainService {
	argon := DefaultArgonParams()
	if cfg.Argon2Iterations > 0 {
		argon.Iterations = cfg.Argon2Iterations
	}
	if cfg.Argon2MemoryMiB > 0 {
		argon.MemoryKiB = cfg.Argon2MemoryMiB * 1024
	}
	if cfg.Argon2Threads > 0 {
		argon.Threads = cfg.Argon2Threads
	}

	iterations := cfg.PBKDF2Iterations
	if iterations <= 0 {
		iterations = DefaultPBKDF2Iterations
	}

	return &keyChainService{argon: argon, pbkdf2Iterations: iterations}
}

// GenerateUserKeyPair implements [KeyChainService].
func (k *keyChainService) GenerateUserKeyPair() (models.UserKeyPair, error) {
	priv, err := rsa.GenerateKey(rand.Reader, RSAKeyBits)
	if err != nil {
		return models.UserKeyPair{}, fmt.Errorf("generate rsa key: %w", err)
	}

	privDER, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return models.UserKeyPair{}, fmt.Errorf("marshal private key: %w", err)
	}

	pubDER, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		return models.UserKeyPair{}, fmt.Errorf("marshal public key: %w", err)
	}

	return models.UserKeyPair{PublicKey: pubDER, PrivateKey: privDER}, nil
}

// GenerateItemKey implements [KeyChainService].
func (k *keyChainService) GenerateItemKey() ([]byte, error) {
	return RandomBytes(KeySize)
}

// WrapPrivateKey implements [KeyChainService].
func (k *keyChainService) WrapPrivateKey(privateKey, wrappingKey []byte) ([]byte, error) {
	if len(privateKey) == 0 {
		return nil, fmt.Errorf("%w: empty private key", ErrEncryption)
	}
	return EncryptChunk(wrappingKey, privateKey)
}

// UnwrapPrivateKey implements [KeyChainService]. A blob that authenticates
// but does not hold an RSA key is reported as [ErrInvalidKey].
func (k *keyChainService) UnwrapPrivateKey(wrapped, wrappingKey []byte) ([]byte, error) {
	privateKey, err := DecryptChunk(wrappingKey, wrapped)
	if err != nil {
		return nil, err
	}

	if _, err = ParsePrivateKey(privateKey); err != nil {
		Zero(privateKey)
		return nil, err
	}

	return privateKey, nil
}

// WrapItemKey implements [KeyChainService].
func (k *keyChainService) WrapItemKey(parentKey, itemKey []byte) ([]byte, error) {
	return EncryptChunk(parentKey, itemKey)
}

// WrapItemKeyForRecipient implements [KeyChainService].
func (k *keyChainService) WrapItemKeyForRecipient(publicKey, itemKey []byte) ([]byte, error) {
	return EncryptAsymmetric(publicKey, itemKey)
}

// UnwrapItemKey implements [KeyChainService].
func (k *keyChainService) UnwrapItemKey(privateKey, wrapped []byte) ([]byte, error) {
	itemKey, err := DecryptAsymmetric(privateKey, wrapped)
	if err != nil {
		return nil, err
	}
	if len(itemKey) != KeySize {
		Zero(itemKey)
		return nil, fmt.Errorf("%w: item key of %d bytes", ErrInvalidKey, len(itemKey))
	}
	return itemKey, nil
}

// DeriveAccountKey implements [KeyChainService].
func (k *keyChainService) DeriveAccountKey(identifier, password string) ([]byte, error) {
	salt := FastHash(IdentifierSaltSize, []byte(identifier))
	return DeriveStrongKey([]byte(password), salt, k.argon)
}

// DeriveLoginProof implements [KeyChainService]. The account key is fed to
// Argon2id as lowercase hex, salted by a BLAKE2b hash of the password, and
// the result is hashed with SHA-256.
func (k *keyChainService) DeriveLoginProof(accountKey []byte, password string) ([]byte, error) {
	if len(accountKey) == 0 {
		return nil, fmt.Errorf("%w: empty account key", ErrKeyDerivation)
	}

	salt := FastHash(IdentifierSaltSize, []byte(password))
	loginKey, err := DeriveStrongKey([]byte(hex.EncodeToString(accountKey)), salt, k.argon)
	if err != nil {
		return nil, err
	}
	defer Zero(loginKey)

	return HashLoginKey(loginKey), nil
}

// DeriveVaultKey implements [KeyChainService].
func (k *keyChainService) DeriveVaultKey(vaultPassword string) ([]byte, error) {
	if vaultPassword == "" {
		return FastHash(KeySize, []byte(deviceKeyLabel)), nil
	}

	salt := FastHash(IdentifierSaltSize, []byte(vaultSaltLabel))
	return DeriveStrongKey([]byte(vaultPassword), salt, k.argon)
}

// DeriveSendKey implements [KeyChainService].
func (k *keyChainService) DeriveSendKey(secret string, salt []byte) ([]byte, []byte, error) {
	if secret == "" {
		return nil, nil, fmt.Errorf("%w: empty secret", ErrKeyDerivation)
	}

	if salt == nil {
		var err error
		if salt, err = RandomBytes(SaltSize); err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrKeyDerivation, err)
		}
	}

	key, err := DerivePasswordKey([]byte(secret), salt, k.pbkdf2Iterations)
	if err != nil {
		return nil, nil, err
	}

	return key, salt, nil
}

// UnwindKeySequence implements [KeyChainService]. The first envelope is
// opened with the private key, each later one with the key recovered from
// the envelope before it.
func (k *keyChainService) UnwindKeySequence(privateKey []byte, seq models.KeySequence, check KeyCheck) ([]byte, error) {
	switch {
	case len(seq) == 0:
		return nil, fmt.Errorf("%w: empty key sequence", ErrKeyChain)
	case check == nil:
		return nil, fmt.Errorf("%w: no key check", ErrKeyChain)
	}

	key, err := DecryptAsymmetric(privateKey, seq[0])
	if err != nil {
		return nil, fmt.Errorf("%w: envelope 0: %w", ErrKeyChain, err)
	}

	for i, envelope := range seq[1:] {
		next, err := DecryptChunk(key, envelope)
		Zero(key)
		if err != nil {
			return nil, fmt.Errorf("%w: envelope %d: %w", ErrKeyChain, i+1, err)
		}
		key = next
	}

	if len(key) != KeySize {
		Zero(key)
		return nil, fmt.Errorf("%w: resolved key has %d bytes", ErrKeyChain, len(key))
	}

	if err := check(key); err != nil {
		Zero(key)
		return nil, fmt.Errorf("%w: resolved key rejected: %w", ErrKeyChain, err)
	}

	return key, nil
}
