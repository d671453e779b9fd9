package service

import (
	"errors"
	"fmt"
)

var (
	// ErrVaultAuth means the vault key could not open the stored private
	// key: a wrong vault password or tampered records.
	ErrVaultAuth = errors.New("vault authentication failed")
	// ErrVaultNotFound means the vault holds no complete key pair.
	ErrVaultNotFound = errors.New("vault key pair not found")
	// ErrWeakVaultPassword is returned by VaultService.Store when the vault
	// password scores below the configured minimum.
	ErrWeakVaultPassword = errors.New("vault password is too weak")

	ErrRecipientNotFound = errors.New("share recipient not found")
	ErrShare             = errors.New("share failed")

	ErrLogin         = errors.New("login failed")
	ErrWrongPassword = errors.New("wrong identifier or password")
	ErrRegister      = errors.New("registration failed")
	ErrLoginExists   = errors.New("account already exists")
	ErrNotLoggedIn   = errors.New("not logged in")
	ErrTokenExpired  = errors.New("session token expired")

	// ErrSessionClosed is returned by every Session accessor after Close.
	ErrSessionClosed = errors.New("session is closed")

	ErrInvalidScope    = errors.New("invalid transfer scope")
	ErrInvalidItemKind = errors.New("invalid item kind")
	ErrInvalidName     = errors.New("invalid encrypted name")
)

// TransferError reports a failed chunked transfer. Status is the HTTP status
// of the failing response, or 0 when no response was received.
type TransferError struct {
	Status  int
	Message string

	err error
}

func (e *TransferError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("transfer failed: %s", e.Message)
	}
	return fmt.Sprintf("transfer failed (%d): %s", e.Status, e.Message)
}

// Unwrap returns the underlying transport error, if any.
func (e *TransferError) Unwrap() error {
	return e.err
}

// ErrInvalidChunkCount is returned by Download for a non-positive chunk
// count.
var ErrInvalidChunkCount = errors.New("invalid chunk count")
