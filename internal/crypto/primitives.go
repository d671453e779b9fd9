// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/pbkdf2"
)

// DerivePasswordKey derives a 256-bit key from password and salt with
// PBKDF2-HMAC-SHA256. A non-positive iterations value falls back to
// [DefaultPBKDF2Iterations]. The output is deterministic for identical inputs.
func DerivePasswordKey(password, salt []byte, iterations int) ([]byte, error) {
	if len(salt) == 0 {
		return nil, fmt.Errorf("%w: empty salt", ErrKeyDerivation)
	}
	if iterations <= 0 {
		iterations = DefaultPBKDF2Iterations
	}

	return pbkdf2.Key(password, salt, iterations, KeySize, sha256.New), nil
}

// DeriveStrongKey derives a key from payload and salt with Argon2id using
// params. Zero cost parameters or an empty salt yield [ErrKeyDerivation].
func DeriveStrongKey(payload, salt []byte, params ArgonParams) ([]byte, error) {
	switch {
	case len(salt) == 0:
		return nil, fmt.Errorf("%w: empty salt", ErrKeyDerivation)
	case params.Iterations == 0, params.MemoryKiB == 0, params.Threads == 0:
		return nil, fmt.Errorf("%w: invalid argon2id parameters %+v", ErrKeyDerivation, params)
	}

	keyLen := params.KeyLen
	if keyLen == 0 {
		keyLen = KeySize
	}

	return argon2.IDKey(payload, salt, params.Iterations, params.MemoryKiB, params.Threads, keyLen), nil
}

// EncryptChunk seals plaintext with AES-256-GCM under key and returns
// nonce ‖ ciphertext ‖ tag. Every call draws a fresh 96-bit nonce.
func EncryptChunk(key, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncryption, err)
	}

	nonce := make([]byte, NonceSize, NonceSize+len(plaintext)+TagSize)
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("%w: generate nonce: %w", ErrEncryption, err)
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// DecryptChunk opens a blob produced by [EncryptChunk]. A short blob or a
// tag mismatch yields [ErrAuthentication] and no plaintext.
func DecryptChunk(key, blob []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncryption, err)
	}

	if len(blob) < TotalOverhead {
		return nil, fmt.Errorf("%w: chunk of %d bytes is too short", ErrAuthentication, len(blob))
	}

	nonce, ciphertext := blob[:NonceSize], blob[NonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthentication
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("key must be %d bytes, got %d", KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	return cipher.NewGCM(block)
}

// EncryptAsymmetric wraps payload under an SPKI (PKIX DER) RSA public key
// with OAEP and SHA-256. It is meant for key material only.
func EncryptAsymmetric(publicKey, payload []byte) ([]byte, error) {
	pub, err := ParsePublicKey(publicKey)
	if err != nil {
		return nil, err
	}

	ct, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, payload, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncryption, err)
	}

	return ct, nil
}

// DecryptAsymmetric unwraps ct with a PKCS#8 DER RSA private key using OAEP
// and SHA-256. Any failure to open the ciphertext yields [ErrAuthentication].
func DecryptAsymmetric(privateKey, ct []byte) ([]byte, error) {
	priv, err := ParsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	payload, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, priv, ct, nil)
	if err != nil {
		return nil, ErrAuthentication
	}

	return payload, nil
}

// ParsePublicKey decodes an SPKI DER RSA public key.
func ParsePublicKey(der []byte) (*rsa.PublicKey, error) {
	key, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: parse public key: %w", ErrInvalidKey, err)
	}

	pub, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: public key is %T, not RSA", ErrInvalidKey, key)
	}

	return pub, nil
}

// ParsePrivateKey decodes a PKCS#8 DER RSA private key.
func ParsePrivateKey(der []byte) (*rsa.PrivateKey, error) {
	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: parse private key: %w", ErrInvalidKey, err)
	}

	priv, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: private key is %T, not RSA", ErrInvalidKey, key)
	}

	return priv, nil
}

// FastHash returns the first size bytes of the BLAKE2b-256 digest of input.
// size is clamped to [1, 32]. It is used for deterministic salts and
// identifiers, never for confidentiality.
func FastHash(size int, input []byte) []byte {
	switch {
	case size > maxFastHashSize:
		size = maxFastHashSize
	case size < 1:
		size = 1
	}

	sum := blake2b.Sum256(input)
	return bytes.Clone(sum[:size])
}

// HashLoginKey returns SHA-256(loginKey).
func HashLoginKey(loginKey []byte) []byte {
	sum := sha256.Sum256(loginKey)
	return sum[:]
}

// Zero overwrites b with zeros.
func Zero(b []byte) {
	clear(b)
}
