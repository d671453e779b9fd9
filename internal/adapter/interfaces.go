// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the zkdrive client
// engine and the storage server.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx responses are returned as [*StatusError], which unwraps to one of
// the sentinel values in errors.go so that callers can match with
// [errors.Is] (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
// The adapter never retries.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-zk-drive/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the storage
// server. Everything it sends is either ciphertext, a wrapped key or a login
// proof; it never sees plaintext key material.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to subsequent authenticated
	// requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string.
	Token() string

	// Register creates an account from a login proof and a wrapped key pair.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login submits the login proof. On success the session token is stored
	// via SetToken and returned alongside the wrapped key pair.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, string, error)

	// Logout invalidates the server session and forgets the local token.
	Logout(ctx context.Context) error

	// UploadMetadata announces a new item under scope and returns its id.
	UploadMetadata(ctx context.Context, scope models.TransferScope, meta models.UploadMetadata) (string, error)

	// UploadChunk sends the encrypted chunk n (1-based) of item id. The
	// result carries the completion body the server returns once all chunks
	// have arrived.
	UploadChunk(ctx context.Context, scope models.TransferScope, id string, n int, blob []byte) (models.ChunkResult, error)

	// DownloadChunk fetches the encrypted chunk n (1-based) of item id.
	DownloadChunk(ctx context.Context, scope models.TransferScope, id string, n int) ([]byte, error)

	// UploadText sends an encrypted text item in one request and returns its
	// id.
	UploadText(ctx context.Context, req models.PlaintextUpload) (string, error)

	// GetPublicKey returns the SPKI DER public key of user.
	GetPublicKey(ctx context.Context, user string) ([]byte, error)

	// CreateShare grants a recipient access to an item.
	CreateShare(ctx context.Context, kind models.ItemKind, itemID string, req models.NewShareRequest) (models.ShareGrant, error)

	// UpdateShare changes a grant's permissions.
	UpdateShare(ctx context.Context, kind models.ItemKind, itemID string, edit models.ShareEdit) error

	// DeleteShare removes a grant.
	DeleteShare(ctx context.Context, kind models.ItemKind, itemID, grantID string) error

	// ListShares returns every grant of an item.
	ListShares(ctx context.Context, kind models.ItemKind, itemID string) ([]models.ShareGrant, error)
}
