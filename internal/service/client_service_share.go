package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-zk-drive/internal/adapter"
	"github.com/MKhiriev/go-zk-drive/internal/crypto"
	"github.com/MKhiriev/go-zk-drive/internal/logger"
	"github.com/MKhiriev/go-zk-drive/models"
)

type clientShareService struct {
	adapter  adapter.ServerAdapter
	keyChain crypto.KeyChainService
	logger   *logger.Logger
}

func NewClientShareService(serverAdapter adapter.ServerAdapter, keyChain crypto.KeyChainService, logger *logger.Logger) ShareService {
	return &clientShareService{adapter: serverAdapter, keyChain: keyChain, logger: logger}
}

func (s *clientShareService) GrantAccess(ctx context.Context, sess *Session, req GrantRequest) (models.ShareGrant, error) {
	if err := checkShareTarget(sess, req.Kind); err != nil {
		return models.ShareGrant{}, err
	}

	publicKey, err := s.adapter.GetPublicKey(ctx, req.Recipient)
	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return models.ShareGrant{}, fmt.Errorf("%w: %s", ErrRecipientNotFound, req.Recipient)
	case err != nil:
		return models.ShareGrant{}, fmt.Errorf("%w: fetch public key: %w", ErrShare, mapAdapterError(err))
	}

	protectedKey, err := s.keyChain.WrapItemKeyForRecipient(publicKey, req.ItemKey)
	if err != nil {
		return models.ShareGrant{}, fmt.Errorf("%w: %w", ErrShare, err)
	}

	grant, err := s.adapter.CreateShare(ctx, req.Kind, req.ItemID, models.NewShareRequest{
		User:         req.Recipient,
		ProtectedKey: protectedKey,
		CanModify:    req.CanModify,
	})
	if err != nil {
		s.logger.Err(err).Str("func", "clientShareService.GrantAccess").Str("item", req.ItemID).Msg("grant rejected")
		return models.ShareGrant{}, fmt.Errorf("%w: %w", ErrShare, mapAdapterError(err))
	}

	return grant, nil
}

func (s *clientShareService) RevokeAccess(ctx context.Context, sess *Session, kind models.ItemKind, itemID, grantID string) error {
	if err := checkShareTarget(sess, kind); err != nil {
		return err
	}

	err := s.adapter.DeleteShare(ctx, kind, itemID, grantID)
	if err != nil && !errors.Is(err, adapter.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrShare, mapAdapterError(err))
	}
	return nil
}

func (s *clientShareService) UpdateGrant(ctx context.Context, sess *Session, kind models.ItemKind, itemID, grantID string, canModify bool) error {
	if err := checkShareTarget(sess, kind); err != nil {
		return err
	}

	err := s.adapter.UpdateShare(ctx, kind, itemID, models.ShareEdit{ID: grantID, ItemID: itemID, CanModify: canModify})
	if err != nil && !errors.Is(err, adapter.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrShare, mapAdapterError(err))
	}
	return nil
}

func (s *clientShareService) ListGrants(ctx context.Context, sess *Session, kind models.ItemKind, itemID string) ([]models.ShareGrant, error) {
	if err := checkShareTarget(sess, kind); err != nil {
		return nil, err
	}

	grants, err := s.adapter.ListShares(ctx, kind, itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShare, mapAdapterError(err))
	}
	return grants, nil
}

func (s *clientShareService) AcceptShare(sess *Session, protectedKey []byte) ([]byte, error) {
	if err := checkSession(sess); err != nil {
		return nil, err
	}

	var itemKey []byte
	err := sess.WithPrivateKey(func(privateKey []byte) error {
		var err error
		itemKey, err = s.keyChain.UnwrapItemKey(privateKey, protectedKey)
		return err
	})
	if err != nil {
		return nil, err
	}
	return itemKey, nil
}

func checkShareTarget(sess *Session, kind models.ItemKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidItemKind, kind)
	}
	return checkSession(sess)
}

func checkSession(sess *Session) error {
	if sess == nil {
		return ErrNotLoggedIn
	}
	return sess.Usable(time.Now())
}
