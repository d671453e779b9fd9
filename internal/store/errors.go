package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrVaultEmpty is returned when no key record is stored.
	ErrVaultEmpty = errors.New("vault is empty")

	// ErrVaultCorrupted is returned when some key records are missing or a
	// record holds a value outside its domain.
	ErrVaultCorrupted = errors.New("vault records are corrupted")

	// ErrInvalidVaultRecord is returned by writes that would leave the vault
	// incomplete.
	ErrInvalidVaultRecord = errors.New("invalid vault record")

	// ErrWordlistsNotFound is returned when the wordlist records are absent.
	ErrWordlistsNotFound = errors.New("wordlists not found")

	ErrLocalSessionNotFound = errors.New("local session not found")
)
