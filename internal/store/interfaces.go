package store

import (
	"context"

	"github.com/MKhiriev/go-zk-drive/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_store_mock.go -package=mock

// VaultRepository persists the three key records of the local key vault.
type VaultRepository interface {
	// ReplaceKeys deletes any existing records and writes all three records
	// of rec in one transaction.
	ReplaceKeys(ctx context.Context, rec models.VaultRecord) error
	// GetKeys returns the validated record set. It fails with ErrVaultEmpty
	// when nothing is stored and ErrVaultCorrupted when the set is partial
	// or malformed.
	GetKeys(ctx context.Context) (models.VaultRecord, error)
	ClearKeys(ctx context.Context) error
}

// WordlistRepository persists the passphrase wordlists.
type WordlistRepository interface {
	SaveWordlists(ctx context.Context, long, short []string) error
	GetWordlists(ctx context.Context) (long, short []string, err error)
}

// SessionRepository persists the server session of the logged-in user.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.LocalSession) error
	GetSession(ctx context.Context) (models.LocalSession, error)
	DeleteSession(ctx context.Context) error
}
