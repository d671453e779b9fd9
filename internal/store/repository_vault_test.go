package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-zk-drive/internal/logger"
	"github.com/MKhiriev/go-zk-drive/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	deleteVaultKeysSQL = `DELETE FROM vault_keys`
	insertVaultKeySQL  = `INSERT INTO vault_keys (id,value) VALUES (?,?)`
	selectVaultKeysSQL = `SELECT id, value FROM vault_keys ORDER BY id`
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:     db,
		logger: logger.Nop(),
	}
}

func newTestVaultRepo(t *testing.T) (VaultRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewVaultRepository(newDBFromSQL(db), logger.Nop()), mock
}

func testContext() context.Context {
	return logger.Nop().WithContext(context.Background())
}

func testVaultRecord() models.VaultRecord {
	return models.VaultRecord{
		WrappedPrivateKey: []byte("wrapped-private"),
		PublicKey:         []byte("public"),
		PasswordProtected: false,
	}
}

func TestVaultRepository_ReplaceKeys_Success(t *testing.T) {
	repo, mock := newTestVaultRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteVaultKeysSQL)).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(insertVaultKeySQL)).
		WithArgs(1, []byte("wrapped-private")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertVaultKeySQL)).
		WithArgs(2, []byte("public")).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertVaultKeySQL)).
		WithArgs(3, []byte("0")).
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceKeys(testContext(), testVaultRecord()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRepository_ReplaceKeys_RollsBackOnInsertError(t *testing.T) {
	repo, mock := newTestVaultRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteVaultKeysSQL)).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(insertVaultKeySQL)).
		WithArgs(1, []byte("wrapped-private")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertVaultKeySQL)).
		WithArgs(2, []byte("public")).
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err := repo.ReplaceKeys(testContext(), testVaultRecord())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk I/O error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRepository_ReplaceKeys_BeginError(t *testing.T) {
	repo, mock := newTestVaultRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("database is locked"))

	err := repo.ReplaceKeys(testContext(), testVaultRecord())
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRepository_ReplaceKeys_IncompleteRecord(t *testing.T) {
	repo, mock := newTestVaultRepo(t)

	err := repo.ReplaceKeys(testContext(), models.VaultRecord{PublicKey: []byte("pub")})
	assert.ErrorIs(t, err, ErrInvalidVaultRecord)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRepository_GetKeys(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][2]any
		want    models.VaultRecord
		wantErr error
	}{
		{
			name: "complete protected vault",
			rows: [][2]any{{1, []byte("priv")}, {2, []byte("pub")}, {3, []byte("1")}},
			want: models.VaultRecord{WrappedPrivateKey: []byte("priv"), PublicKey: []byte("pub"), PasswordProtected: true},
		},
		{
			name: "complete device vault",
			rows: [][2]any{{1, []byte("priv")}, {2, []byte("pub")}, {3, []byte("0")}},
			want: models.VaultRecord{WrappedPrivateKey: []byte("priv"), PublicKey: []byte("pub")},
		},
		{
			name:    "empty",
			wantErr: ErrVaultEmpty,
		},
		{
			name:    "missing flag",
			rows:    [][2]any{{1, []byte("priv")}, {2, []byte("pub")}},
			wantErr: ErrVaultCorrupted,
		},
		{
			name:    "missing private key",
			rows:    [][2]any{{2, []byte("pub")}, {3, []byte("0")}},
			wantErr: ErrVaultCorrupted,
		},
		{
			name:    "malformed flag",
			rows:    [][2]any{{1, []byte("priv")}, {2, []byte("pub")}, {3, []byte("yes")}},
			wantErr: ErrVaultCorrupted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestVaultRepo(t)

			rows := sqlmock.NewRows([]string{"id", "value"})
			for _, r := range tt.rows {
				rows.AddRow(r[0], r[1])
			}
			mock.ExpectQuery(regexp.QuoteMeta(selectVaultKeysSQL)).WillReturnRows(rows)

			got, err := repo.GetKeys(testContext())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVaultRepository_GetKeys_QueryError(t *testing.T) {
	repo, mock := newTestVaultRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectVaultKeysSQL)).WillReturnError(errors.New("no such table"))

	_, err := repo.GetKeys(testContext())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrVaultEmpty))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRepository_ClearKeys(t *testing.T) {
	repo, mock := newTestVaultRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteVaultKeysSQL)).WillReturnResult(sqlmock.NewResult(0, 3))
	require.NoError(t, repo.ClearKeys(testContext()))

	mock.ExpectExec(regexp.QuoteMeta(deleteVaultKeysSQL)).WillReturnError(errors.New("readonly database"))
	assert.Error(t, repo.ClearKeys(testContext()))

	assert.NoError(t, mock.ExpectationsWereMet())
}
