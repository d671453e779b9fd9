// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-zk-drive/internal/adapter"
	"github.com/MKhiriev/go-zk-drive/internal/crypto"
	"github.com/MKhiriev/go-zk-drive/internal/logger"
	"github.com/MKhiriev/go-zk-drive/internal/store"
	"github.com/MKhiriev/go-zk-drive/internal/utils"
	"github.com/MKhiriev/go-zk-drive/models"
)

type clientAuthService struct {
	adapter  adapter.ServerAdapter
	keyChain crypto.KeyChainService
	vault    VaultService
	sessions store.SessionRepository

	now    func() time.Time
	logger *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, keyChain crypto.KeyChainService, vault VaultService, sessions store.SessionRepository, logger *logger.Logger) AuthService {
	return &clientAuthService{
		adapter:  serverAdapter,
		keyChain: keyChain,
		vault:    vault,
		sessions: sessions,
		now:      time.Now,
		logger:   logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, identifier, password string) error {
	pair, err := a.keyChain.GenerateUserKeyPair()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRegister, err)
	}
	defer crypto.Zero(pair.PrivateKey)

	accountKey, err := a.keyChain.DeriveAccountKey(identifier, password)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRegister, err)
	}
	defer crypto.Zero(accountKey)

	protectedKey, err := a.keyChain.WrapPrivateKey(pair.PrivateKey, accountKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRegister, err)
	}

	proof, err := a.keyChain.DeriveLoginProof(accountKey, password)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRegister, err)
	}

	err = a.adapter.Register(ctx, models.RegisterRequest{
		Identifier:   identifier,
		LoginKeyHash: proof,
		ProtectedKey: protectedKey,
		PublicKey:    pair.PublicKey,
	})
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Register").Msg("server rejected registration")
		return fmt.Errorf("%w: %w", ErrRegister, mapAdapterError(err))
	}

	return nil
}

func (a *clientAuthService) Login(ctx context.Context, identifier, password string) (*Session, error) {
	accountKey, err := a.keyChain.DeriveAccountKey(identifier, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLogin, err)
	}
	defer crypto.Zero(accountKey)

	proof, err := a.keyChain.DeriveLoginProof(accountKey, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLogin, err)
	}

	resp, rawToken, err := a.adapter.Login(ctx, models.LoginRequest{Identifier: identifier, LoginKeyHash: proof})
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Login").Msg("server rejected login")
		return nil, fmt.Errorf("%w: %w", ErrLogin, mapAdapterError(err))
	}

	privateKey, err := a.keyChain.UnwrapPrivateKey(resp.ProtectedKey, accountKey)
	if err != nil {
		return nil, fmt.Errorf("%w: unwrap private key: %w", ErrLogin, err)
	}

	token, err := utils.ParseToken(rawToken)
	if err != nil {
		crypto.Zero(privateKey)
		return nil, fmt.Errorf("%w: %w", ErrLogin, err)
	}

	err = a.sessions.SaveSession(ctx, models.LocalSession{Identifier: identifier, Token: token})
	if err != nil {
		// The in-memory session is still usable for this run.
		a.logger.Warn().Err(err).Str("func", "clientAuthService.Login").Msg("failed to persist session token")
	}

	pair := models.UserKeyPair{PublicKey: resp.PublicKey, PrivateKey: privateKey}
	return NewSession(identifier, pair, token), nil
}

func (a *clientAuthService) Remember(ctx context.Context, sess *Session, vaultPassword string) error {
	publicKey, err := sess.PublicKey()
	if err != nil {
		return err
	}

	return sess.WithPrivateKey(func(privateKey []byte) error {
		return a.vault.Store(ctx, models.UserKeyPair{PublicKey: publicKey, PrivateKey: privateKey}, vaultPassword)
	})
}

func (a *clientAuthService) Unlock(ctx context.Context, vaultPassword string) (*Session, error) {
	pair, err := a.vault.Load(ctx, vaultPassword)
	if err != nil {
		return nil, err
	}

	stored, err := a.sessions.GetSession(ctx)
	switch {
	case errors.Is(err, store.ErrLocalSessionNotFound):
		return NewSession("", pair, models.Token{}), nil
	case err != nil:
		crypto.Zero(pair.PrivateKey)
		return nil, fmt.Errorf("read stored session: %w", err)
	}

	if stored.Token.Expired(a.now()) {
		a.logger.Debug().Str("func", "clientAuthService.Unlock").Msg("stored token expired")
		return NewSession(stored.Identifier, pair, models.Token{}), nil
	}

	a.adapter.SetToken(stored.Token.Raw)
	return NewSession(stored.Identifier, pair, stored.Token), nil
}

func (a *clientAuthService) Logout(ctx context.Context, sess *Session) error {
	var errs []error

	if a.adapter.Token() != "" {
		if err := a.adapter.Logout(ctx); err != nil && !errors.Is(err, adapter.ErrUnauthorized) {
			errs = append(errs, fmt.Errorf("server logout: %w", err))
		}
	}
	if err := a.vault.Clear(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := a.sessions.DeleteSession(ctx); err != nil {
		errs = append(errs, fmt.Errorf("delete stored session: %w", err))
	}

	a.adapter.SetToken("")
	if sess != nil {
		sess.Close()
	}

	return errors.Join(errs...)
}
