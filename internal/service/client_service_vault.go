package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-zk-drive/internal/crypto"
	"github.com/MKhiriev/go-zk-drive/internal/logger"
	"github.com/MKhiriev/go-zk-drive/internal/store"
	"github.com/MKhiriev/go-zk-drive/models"
	"github.com/trustelem/zxcvbn"
)

type vaultService struct {
	vault     store.VaultRepository
	wordlists store.WordlistRepository
	keyChain  crypto.KeyChainService

	minPasswordScore int
	logger           *logger.Logger
}

// NewVaultService builds a [VaultService]. minPasswordScore is a zxcvbn
// score in 0..4; zero disables the strength check.
func NewVaultService(vault store.VaultRepository, wordlists store.WordlistRepository, keyChain crypto.KeyChainService, minPasswordScore int, logger *logger.Logger) VaultService {
	return &vaultService{
		vault:            vault,
		wordlists:        wordlists,
		keyChain:         keyChain,
		minPasswordScore: minPasswordScore,
		logger:           logger,
	}
}

func (v *vaultService) Store(ctx context.Context, pair models.UserKeyPair, vaultPassword string) error {
	if len(pair.PrivateKey) == 0 || len(pair.PublicKey) == 0 {
		return fmt.Errorf("%w: incomplete key pair", crypto.ErrInvalidKey)
	}

	if vaultPassword != "" && v.minPasswordScore > 0 {
		if score := zxcvbn.PasswordStrength(vaultPassword, nil).Score; score < v.minPasswordScore {
			return fmt.Errorf("%w: score %d, need %d", ErrWeakVaultPassword, score, v.minPasswordScore)
		}
	}

	vaultKey, err := v.keyChain.DeriveVaultKey(vaultPassword)
	if err != nil {
		return fmt.Errorf("derive vault key: %w", err)
	}
	defer crypto.Zero(vaultKey)

	wrapped, err := v.keyChain.WrapPrivateKey(pair.PrivateKey, vaultKey)
	if err != nil {
		return fmt.Errorf("wrap private key: %w", err)
	}

	err = v.vault.ReplaceKeys(ctx, models.VaultRecord{
		WrappedPrivateKey: wrapped,
		PublicKey:         pair.PublicKey,
		PasswordProtected: vaultPassword != "",
	})
	if err != nil {
		v.logger.Err(err).Str("func", "vaultService.Store").Msg("failed to persist key pair")
		return fmt.Errorf("store key pair: %w", err)
	}

	return nil
}

func (v *vaultService) Load(ctx context.Context, vaultPassword string) (models.UserKeyPair, error) {
	rec, err := v.getKeys(ctx)
	if err != nil {
		return models.UserKeyPair{}, err
	}

	vaultKey, err := v.keyChain.DeriveVaultKey(vaultPassword)
	if err != nil {
		return models.UserKeyPair{}, fmt.Errorf("derive vault key: %w", err)
	}
	defer crypto.Zero(vaultKey)

	privateKey, err := v.keyChain.UnwrapPrivateKey(rec.WrappedPrivateKey, vaultKey)
	if err != nil {
		v.logger.Debug().Str("func", "vaultService.Load").Bool("password_protected", rec.PasswordProtected).Msg("vault key rejected")
		return models.UserKeyPair{}, fmt.Errorf("%w: %w", ErrVaultAuth, err)
	}

	return models.UserKeyPair{PublicKey: rec.PublicKey, PrivateKey: privateKey}, nil
}

func (v *vaultService) Clear(ctx context.Context) error {
	if err := v.vault.ClearKeys(ctx); err != nil {
		return fmt.Errorf("clear vault: %w", err)
	}
	return nil
}

func (v *vaultService) IsPasswordProtected(ctx context.Context) (bool, error) {
	rec, err := v.getKeys(ctx)
	if err != nil {
		return false, err
	}
	return rec.PasswordProtected, nil
}

func (v *vaultService) StoreWordlists(ctx context.Context, long, short []string) error {
	if err := v.wordlists.SaveWordlists(ctx, long, short); err != nil {
		return fmt.Errorf("store wordlists: %w", err)
	}
	return nil
}

func (v *vaultService) LoadWordlists(ctx context.Context) ([]string, []string, error) {
	long, short, err := v.wordlists.GetWordlists(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load wordlists: %w", err)
	}
	return long, short, nil
}

// getKeys maps the repository's empty and corrupted states onto
// ErrVaultNotFound.
func (v *vaultService) getKeys(ctx context.Context) (models.VaultRecord, error) {
	rec, err := v.vault.GetKeys(ctx)
	switch {
	case errors.Is(err, store.ErrVaultEmpty), errors.Is(err, store.ErrVaultCorrupted):
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrVaultNotFound, err)
	case err != nil:
		return models.VaultRecord{}, fmt.Errorf("read vault: %w", err)
	}
	return rec, nil
}
