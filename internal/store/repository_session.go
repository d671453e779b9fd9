package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-zk-drive/internal/logger"
	"github.com/MKhiriev/go-zk-drive/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *sessionRepository) SaveSession(ctx context.Context, session models.LocalSession) error {
	q, err := buildUpsertSessionQuery(session)
	if err != nil {
		return err
	}

	if _, err = s.DB.ExecContext(ctx, q.sql, q.args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sessionRepository.SaveSession").
			Str("identifier", session.Identifier).
			Msg("failed to save session")
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (s *sessionRepository) GetSession(ctx context.Context) (models.LocalSession, error) {
	q, err := buildSelectSessionQuery()
	if err != nil {
		return models.LocalSession{}, err
	}

	var (
		session   models.LocalSession
		expiresAt sql.NullTime
	)
	err = s.DB.QueryRowContext(ctx, q.sql, q.args...).Scan(&session.Identifier, &session.Token.Raw, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalSession{}, ErrLocalSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionRepository.GetSession").Msg("failed to read session")
		return models.LocalSession{}, fmt.Errorf("failed to read session: %w", err)
	}

	if expiresAt.Valid {
		session.Token.ExpiresAt = expiresAt.Time
	}

	return session, nil
}

func (s *sessionRepository) DeleteSession(ctx context.Context) error {
	q, err := buildDeleteAllQuery(clientSessionTable)
	if err != nil {
		return err
	}

	if _, err = s.DB.ExecContext(ctx, q.sql, q.args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionRepository.DeleteSession").Msg("failed to delete session")
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
