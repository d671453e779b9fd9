// Package service implements the client engine of zkdrive: the local key
// vault, login and registration, chunked encrypted transfers and sharing.
//
// Services receive an explicit [*Session] instead of reading key material
// from package state. A Session is produced by [AuthService] and must be
// closed when the caller is done with it.
package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-zk-drive/models"
)

// VaultService keeps the identity key pair on the local device, wrapped
// under a key derived from an optional vault password.
type VaultService interface {
	// Store wraps pair.PrivateKey under the vault key and replaces every
	// stored record in one transaction. An empty vaultPassword selects the
	// fixed device key. A non-empty password that scores below the
	// configured minimum is rejected with ErrWeakVaultPassword.
	Store(ctx context.Context, pair models.UserKeyPair, vaultPassword string) error

	// Load returns the stored key pair in DER form. A missing or partial
	// vault yields ErrVaultNotFound; a wrong password or tampered record
	// yields ErrVaultAuth.
	Load(ctx context.Context, vaultPassword string) (models.UserKeyPair, error)

	// Clear removes every key record.
	Clear(ctx context.Context) error

	// IsPasswordProtected reports the flag stored with the key pair.
	IsPasswordProtected(ctx context.Context) (bool, error)

	// StoreWordlists replaces the passphrase wordlists.
	StoreWordlists(ctx context.Context, long, short []string) error

	// LoadWordlists returns the stored wordlists.
	LoadWordlists(ctx context.Context) (long, short []string, err error)
}

// AuthService creates accounts and produces sessions.
type AuthService interface {
	// Register generates an identity key pair and creates the account. The
	// server receives only the login proof and the wrapped private key.
	Register(ctx context.Context, identifier, password string) error

	// Login authenticates against the server and returns a session holding
	// the unwrapped key pair and the bearer token. The token is persisted
	// so that later runs can restore it with Unlock.
	Login(ctx context.Context, identifier, password string) (*Session, error)

	// Remember stores the session key pair in the local vault under
	// vaultPassword.
	Remember(ctx context.Context, sess *Session, vaultPassword string) error

	// Unlock builds a session from the local vault. A stored login token,
	// if still valid, is attached to the session and the adapter.
	Unlock(ctx context.Context, vaultPassword string) (*Session, error)

	// Logout ends the server session, clears the vault and the stored
	// token, and closes sess. Every step runs even if an earlier one fails.
	Logout(ctx context.Context, sess *Session) error
}

// ProgressFunc is called after each chunk with the number of completed
// chunks and the total.
type ProgressFunc func(done, total int)

// UploadRequest describes one item to encrypt and upload.
type UploadRequest struct {
	Scope models.TransferScope
	// Name is the plaintext item name. It is sent encrypted.
	Name string
	Body io.Reader
	// Size is the exact number of bytes Body yields.
	Size    int64
	ItemKey []byte
	// Meta carries the scope-specific fields. Name, Chunks and Size are
	// overwritten by Upload.
	Meta     models.UploadMetadata
	Progress ProgressFunc
}

// DownloadRequest describes one item to download and decrypt.
type DownloadRequest struct {
	Scope    models.TransferScope
	ID       string
	Chunks   int
	ItemKey  []byte
	Progress ProgressFunc
}

// TextRequest is a single-shot encrypted text send.
type TextRequest struct {
	Key        []byte
	Name       string
	Text       string
	Salt       []byte
	Downloads  int
	Expiration string
}

// TransferService moves encrypted items between the client and the server.
type TransferService interface {
	// Upload encrypts req.Body chunk by chunk and returns the completion
	// body of the server.
	Upload(ctx context.Context, req UploadRequest) (string, error)

	// Download writes the decrypted chunks of an item to w in order. A chunk
	// that fails authentication is never written.
	Download(ctx context.Context, req DownloadRequest, w io.Writer) error

	// UploadText encrypts and sends a text item in one request and returns
	// its id.
	UploadText(ctx context.Context, req TextRequest) (string, error)

	// DecryptName opens a hex-encoded encrypted item name.
	DecryptName(key []byte, hexName string) (string, error)

	// ChunkCount returns the number of chunks an item of size bytes is
	// split into.
	ChunkCount(size int64) int
}

// GrantRequest grants a recipient access to an item.
type GrantRequest struct {
	Kind      models.ItemKind
	ItemID    string
	Recipient string
	ItemKey   []byte
	CanModify bool
}

// ShareService manages access grants on files and folders.
type ShareService interface {
	// GrantAccess wraps the item key under the recipient's public key and
	// registers the grant.
	GrantAccess(ctx context.Context, sess *Session, req GrantRequest) (models.ShareGrant, error)

	// RevokeAccess deletes a grant. A grant that no longer exists counts as
	// revoked.
	RevokeAccess(ctx context.Context, sess *Session, kind models.ItemKind, itemID, grantID string) error

	// UpdateGrant changes a grant's permissions. A grant that no longer
	// exists counts as updated.
	UpdateGrant(ctx context.Context, sess *Session, kind models.ItemKind, itemID, grantID string, canModify bool) error

	// ListGrants returns the grants of an item.
	ListGrants(ctx context.Context, sess *Session, kind models.ItemKind, itemID string) ([]models.ShareGrant, error)

	// AcceptShare unwraps an item key received through a grant.
	AcceptShare(sess *Session, protectedKey []byte) ([]byte, error)
}
