package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-zk-drive/internal/logger"
	"github.com/MKhiriev/go-zk-drive/models"
)

type wordlistRepository struct {
	*DB
	logger *logger.Logger
}

func NewWordlistRepository(db *DB, logger *logger.Logger) WordlistRepository {
	return &wordlistRepository{
		DB:     db,
		logger: logger,
	}
}

func (w *wordlistRepository) SaveWordlists(ctx context.Context, long, short []string) error {
	queries, err := buildReplaceWordlistsQueries(long, short)
	if err != nil {
		return err
	}

	if err = w.execInTx(ctx, "wordlistRepository.SaveWordlists", queries); err != nil {
		return fmt.Errorf("failed to save wordlists: %w", err)
	}

	return nil
}

func (w *wordlistRepository) GetWordlists(ctx context.Context) ([]string, []string, error) {
	log := logger.FromContext(ctx)

	q, err := buildSelectWordlistsQuery()
	if err != nil {
		return nil, nil, err
	}

	rows, err := w.DB.QueryContext(ctx, q.sql, q.args...)
	if err != nil {
		log.Err(err).Str("func", "wordlistRepository.GetWordlists").Msg("failed to query wordlists")
		return nil, nil, fmt.Errorf("failed to query wordlists: %w", err)
	}
	defer rows.Close()

	lists := make(map[models.WordlistID][]string, 2)
	for rows.Next() {
		var (
			id      int
			encoded string
			words   []string
		)
		if err = rows.Scan(&id, &encoded); err != nil {
			log.Err(err).Str("func", "wordlistRepository.GetWordlists").Msg("failed to scan wordlist row")
			return nil, nil, fmt.Errorf("failed to scan wordlist row: %w", err)
		}
		if err = json.Unmarshal([]byte(encoded), &words); err != nil {
			log.Err(err).Str("func", "wordlistRepository.GetWordlists").Int("id", id).Msg("malformed wordlist")
			return nil, nil, fmt.Errorf("decode wordlist %d: %w", id, err)
		}
		lists[models.WordlistID(id)] = words
	}
	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating wordlist rows: %w", err)
	}

	long, okLong := lists[models.WordlistLong]
	short, okShort := lists[models.WordlistShort]
	if !okLong || !okShort {
		return nil, nil, ErrWordlistsNotFound
	}

	return long, short, nil
}
