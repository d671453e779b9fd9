package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-zk-drive/internal/logger"
	"github.com/MKhiriev/go-zk-drive/models"
)

type vaultRepository struct {
	*DB
	logger *logger.Logger
}

func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	return &vaultRepository{
		DB:     db,
		logger: logger,
	}
}

func (v *vaultRepository) ReplaceKeys(ctx context.Context, rec models.VaultRecord) error {
	if len(rec.WrappedPrivateKey) == 0 || len(rec.PublicKey) == 0 {
		return fmt.Errorf("%w: both keys are required", ErrInvalidVaultRecord)
	}

	queries, err := buildReplaceVaultKeysQueries(rec)
	if err != nil {
		return err
	}

	if err = v.execInTx(ctx, "vaultRepository.ReplaceKeys", queries); err != nil {
		return fmt.Errorf("failed to replace vault keys: %w", err)
	}

	return nil
}

func (v *vaultRepository) GetKeys(ctx context.Context) (models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	q, err := buildSelectVaultKeysQuery()
	if err != nil {
		return models.VaultRecord{}, err
	}

	rows, err := v.DB.QueryContext(ctx, q.sql, q.args...)
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.GetKeys").Msg("failed to query vault keys")
		return models.VaultRecord{}, fmt.Errorf("failed to query vault keys: %w", err)
	}
	defer rows.Close()

	records := make(map[models.VaultRecordID][]byte, 3)
	for rows.Next() {
		var (
			id    int
			value []byte
		)
		if err = rows.Scan(&id, &value); err != nil {
			log.Err(err).Str("func", "vaultRepository.GetKeys").Msg("failed to scan vault key row")
			return models.VaultRecord{}, fmt.Errorf("failed to scan vault key row: %w", err)
		}
		records[models.VaultRecordID(id)] = value
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "vaultRepository.GetKeys").Msg("error iterating vault key rows")
		return models.VaultRecord{}, fmt.Errorf("error iterating vault key rows: %w", err)
	}

	return recordFromRows(records)
}

func recordFromRows(records map[models.VaultRecordID][]byte) (models.VaultRecord, error) {
	if len(records) == 0 {
		return models.VaultRecord{}, ErrVaultEmpty
	}

	priv, okPriv := records[models.VaultRecordPrivateKey]
	pub, okPub := records[models.VaultRecordPublicKey]
	flag, okFlag := records[models.VaultRecordPasswordProtected]
	if !okPriv || !okPub || !okFlag || len(priv) == 0 || len(pub) == 0 {
		return models.VaultRecord{}, fmt.Errorf("%w: %d of 3 records present", ErrVaultCorrupted, len(records))
	}

	protected, err := decodeFlag(flag)
	if err != nil {
		return models.VaultRecord{}, err
	}

	return models.VaultRecord{
		WrappedPrivateKey: priv,
		PublicKey:         pub,
		PasswordProtected: protected,
	}, nil
}

func (v *vaultRepository) ClearKeys(ctx context.Context) error {
	q, err := buildDeleteAllQuery(vaultKeysTable)
	if err != nil {
		return err
	}

	if _, err = v.DB.ExecContext(ctx, q.sql, q.args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "vaultRepository.ClearKeys").Msg("failed to clear vault keys")
		return fmt.Errorf("failed to clear vault keys: %w", err)
	}

	return nil
}
