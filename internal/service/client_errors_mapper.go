// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-zk-drive/internal/adapter"
	"github.com/MKhiriev/go-zk-drive/internal/app"
)

// mapAdapterError translates an adapter error into a service error when the
// status and body identify one; otherwise err is returned unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var se *adapter.StatusError
	if !errors.As(err, &se) {
		return err
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		if se.Body == app.MsgInvalidLoginPassword {
			return ErrWrongPassword
		}
		return ErrTokenExpired

	case errors.Is(err, adapter.ErrForbidden):
		return ErrWrongPassword

	case errors.Is(err, adapter.ErrConflict):
		if se.Body == app.MsgLoginAlreadyExists {
			return ErrLoginExists
		}
	}

	return err
}

// newTransferError wraps err as a [*TransferError], carrying the HTTP status
// when err came from a server response.
func newTransferError(err error) *TransferError {
	var te *TransferError
	if errors.As(err, &te) {
		return te
	}

	var se *adapter.StatusError
	if errors.As(err, &se) {
		return &TransferError{Status: se.StatusCode, Message: se.Body, err: err}
	}

	return &TransferError{Message: err.Error(), err: err}
}
