package client

import (
	"errors"

	"github.com/MKhiriev/go-zk-drive/internal/app"
	"github.com/MKhiriev/go-zk-drive/internal/crypto"
	"github.com/MKhiriev/go-zk-drive/internal/service"
)

// userMessage turns an error into the line shown to the user. Low-level
// causes go to the log file only.
func userMessage(err error) string {
	var te *service.TransferError

	switch {
	case errors.Is(err, service.ErrVaultAuth), errors.Is(err, service.ErrVaultNotFound):
		return app.MsgUnableToUnlock
	case errors.Is(err, service.ErrWeakVaultPassword):
		return app.MsgWeakVaultPassword
	case errors.Is(err, service.ErrWrongPassword):
		return app.MsgInvalidLoginPassword
	case errors.Is(err, service.ErrLoginExists):
		return app.MsgLoginAlreadyExists
	case errors.Is(err, service.ErrTokenExpired):
		return app.MsgSessionExpired
	case errors.Is(err, service.ErrNotLoggedIn), errors.Is(err, service.ErrSessionClosed):
		return app.MsgNotLoggedIn
	case errors.Is(err, service.ErrLogin):
		return app.MsgLoginFailed
	case errors.Is(err, service.ErrRegister):
		return app.MsgRegistrationFailed
	case errors.Is(err, service.ErrRecipientNotFound):
		return app.MsgRecipientNotFound
	case errors.Is(err, service.ErrShare):
		return app.MsgShareFailed
	case errors.Is(err, crypto.ErrAuthentication), errors.Is(err, crypto.ErrKeyChain):
		return app.MsgDownloadCorrupted
	case errors.As(err, &te):
		return te.Error()
	default:
		return err.Error()
	}
}
