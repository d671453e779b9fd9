package store

import (
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-zk-drive/models"
)

const (
	vaultKeysTable      = "vault_keys"
	vaultWordlistsTable = "vault_wordlists"
	clientSessionTable  = "client_session"

	sessionRowID = 1

	flagTrue  = "1"
	flagFalse = "0"
)

// sqlite uses ? placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type query struct {
	sql  string
	args []any
}

func toQuery(b sq.Sqlizer) (query, error) {
	s, args, err := b.ToSql()
	if err != nil {
		return query{}, fmt.Errorf("build query: %w", err)
	}
	return query{sql: s, args: args}, nil
}

func encodeFlag(v bool) []byte {
	if v {
		return []byte(flagTrue)
	}
	return []byte(flagFalse)
}

func decodeFlag(b []byte) (bool, error) {
	switch string(b) {
	case flagTrue:
		return true, nil
	case flagFalse:
		return false, nil
	default:
		return false, fmt.Errorf("%w: password flag %q", ErrVaultCorrupted, b)
	}
}

// buildReplaceVaultKeysQueries returns DELETE followed by one INSERT per record.
func buildReplaceVaultKeysQueries(rec models.VaultRecord) ([]query, error) {
	values := []struct {
		id    models.VaultRecordID
		value []byte
	}{
		{models.VaultRecordPrivateKey, rec.WrappedPrivateKey},
		{models.VaultRecordPublicKey, rec.PublicKey},
		{models.VaultRecordPasswordProtected, encodeFlag(rec.PasswordProtected)},
	}

	del, err := toQuery(psql.Delete(vaultKeysTable))
	if err != nil {
		return nil, err
	}

	queries := []query{del}
	for _, v := range values {
		ins, err := toQuery(psql.Insert(vaultKeysTable).
			Columns("id", "value").
			Values(int(v.id), v.value))
		if err != nil {
			return nil, err
		}
		queries = append(queries, ins)
	}

	return queries, nil
}

func buildSelectVaultKeysQuery() (query, error) {
	return toQuery(psql.Select("id", "value").From(vaultKeysTable).OrderBy("id"))
}

func buildDeleteAllQuery(table string) (query, error) {
	return toQuery(psql.Delete(table))
}

func buildReplaceWordlistsQueries(long, short []string) ([]query, error) {
	del, err := buildDeleteAllQuery(vaultWordlistsTable)
	if err != nil {
		return nil, err
	}

	lists := []struct {
		id    models.WordlistID
		words []string
	}{
		{models.WordlistLong, long},
		{models.WordlistShort, short},
	}

	queries := []query{del}
	for _, l := range lists {
		if l.words == nil {
			l.words = []string{}
		}
		encoded, err := json.Marshal(l.words)
		if err != nil {
			return nil, fmt.Errorf("encode wordlist %d: %w", l.id, err)
		}

		ins, err := toQuery(psql.Insert(vaultWordlistsTable).
			Columns("id", "words").
			Values(int(l.id), string(encoded)))
		if err != nil {
			return nil, err
		}
		queries = append(queries, ins)
	}

	return queries, nil
}

func buildSelectWordlistsQuery() (query, error) {
	return toQuery(psql.Select("id", "words").From(vaultWordlistsTable).OrderBy("id"))
}

func buildUpsertSessionQuery(s models.LocalSession) (query, error) {
	var expiresAt *time.Time
	if !s.Token.ExpiresAt.IsZero() {
		t := s.Token.ExpiresAt.UTC()
		expiresAt = &t
	}

	return toQuery(psql.Insert(clientSessionTable).
		Options("OR REPLACE").
		Columns("id", "identifier", "token", "expires_at").
		Values(sessionRowID, s.Identifier, s.Token.Raw, expiresAt))
}

func buildSelectSessionQuery() (query, error) {
	return toQuery(psql.Select("identifier", "token", "expires_at").
		From(clientSessionTable).
		Where(sq.Eq{"id": sessionRowID}))
}
