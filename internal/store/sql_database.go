package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-zk-drive/internal/logger"
	"github.com/MKhiriev/go-zk-drive/migrations"
)

// DB is the local SQLite handle shared by the client repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// execInTx runs every query in one transaction. Any failure rolls the whole
// batch back.
func (db *DB) execInTx(ctx context.Context, fn string, queries []query) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to begin transaction")
		return fmt.Errorf("begin transaction: %w", err)
	}

	for i, q := range queries {
		if _, err = tx.ExecContext(ctx, q.sql, q.args...); err != nil {
			log.Err(err).Str("func", fn).Int("statement", i).Msg("failed to execute statement, rolling back")
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Err(rbErr).Str("func", fn).Msg("rollback failed")
			}
			return fmt.Errorf("execute statement %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", fn).Msg("failed to commit transaction")
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
