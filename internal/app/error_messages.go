// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains user-facing message strings shared by the zkdrive
// services and the command-line driver.
//
// Some Msg* constants double as the response bodies the server is expected
// to send, which lets the service layer turn a generic HTTP status into a
// precise error.
package app

const (
	// MsgUnableToUnlock is shown for every local vault unlock failure: a
	// wrong vault password and an absent or damaged vault are not told
	// apart.
	MsgUnableToUnlock = "unable to unlock vault"

	// MsgInvalidLoginPassword is the server body for a rejected login proof.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgLoginAlreadyExists is the server body for a duplicate registration.
	MsgLoginAlreadyExists = "login already exists"

	// MsgLoginFailed is shown when login fails for any other reason.
	MsgLoginFailed = "login failed"

	// MsgRegistrationFailed is shown when registration fails.
	MsgRegistrationFailed = "registration failed"

	// MsgNotLoggedIn is shown when a command needs a session and none is
	// stored.
	MsgNotLoggedIn = "not logged in, run `zkdrive login` first"

	// MsgSessionExpired is shown when the stored server token has expired.
	MsgSessionExpired = "session expired, log in again"

	// MsgWeakVaultPassword is shown when a vault password fails the
	// strength check.
	MsgWeakVaultPassword = "vault password is too weak"

	// MsgRecipientNotFound is shown when a share recipient has no account.
	MsgRecipientNotFound = "recipient not found"

	// MsgShareFailed is shown for any other sharing failure.
	MsgShareFailed = "unable to update sharing"

	// MsgUploadIncomplete is the transfer error message when the server
	// never confirms that all chunks arrived.
	MsgUploadIncomplete = "upload did not complete"

	// MsgDownloadCorrupted is shown when a downloaded chunk fails
	// authentication.
	MsgDownloadCorrupted = "downloaded data failed integrity check"
)
