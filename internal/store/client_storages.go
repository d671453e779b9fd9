package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-zk-drive/internal/config"
	"github.com/MKhiriev/go-zk-drive/internal/logger"
)

// ClientStorages groups the client-side repositories over one SQLite file.
type ClientStorages struct {
	// Vault holds the wrapped identity key pair.
	Vault VaultRepository
	// Wordlists holds the passphrase wordlists.
	Wordlists WordlistRepository
	// Sessions holds the server session between CLI runs.
	Sessions SessionRepository

	db *DB
}

// NewClientStorages opens (creating if needed) the SQLite file named by
// cfg.DB.DSN, applies pending migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Vault:     NewVaultRepository(db, logger),
		Wordlists: NewWordlistRepository(db, logger),
		Sessions:  NewSessionRepository(db, logger),
		db:        db,
	}, nil
}

// Close releases the database handle.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
