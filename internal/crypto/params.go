package crypto

// Sizes of the chunk wire format: [nonce][ciphertext][tag].
const (
	// KeySize is the length of every symmetric key in bytes (AES-256).
	KeySize = 32
	// NonceSize is the AES-GCM nonce length in bytes.
	NonceSize = 12
	// TagSize is the AES-GCM authentication tag length in bytes.
	TagSize = 16
	// TotalOverhead is the number of bytes an encrypted chunk adds to its
	// plaintext.
	TotalOverhead = NonceSize + TagSize

	// RSAKeyBits is the modulus size of identity key pairs.
	RSAKeyBits = 2048

	// DefaultPBKDF2Iterations is the PBKDF2-HMAC-SHA256 iteration count.
	DefaultPBKDF2Iterations = 600000

	// SaltSize is the length of random salts for password-derived send keys.
	SaltSize = 32

	// IdentifierSaltSize is the digest length used to turn identifiers and
	// passwords into Argon2id salts.
	IdentifierSaltSize = 16

	maxFastHashSize = 32
)

// ArgonParams holds Argon2id cost parameters.
type ArgonParams struct {
	// Iterations is the Argon2id time cost.
	Iterations uint32
	// MemoryKiB is the Argon2id memory cost in KiB.
	MemoryKiB uint32
	// Threads is the degree of parallelism.
	Threads uint8
	// KeyLen is the derived key length in bytes.
	KeyLen uint32
}

// DefaultArgonParams mirrors the libsodium-compatible profile: 2 passes over
// 64 MiB on a single lane.
func DefaultArgonParams() ArgonParams {
	return ArgonParams{
		Iterations: 2,
		MemoryKiB:  64 * 1024,
		Threads:    1,
		KeyLen:     KeySize,
	}
}
