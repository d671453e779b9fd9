// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the zkdrive command-line driver.
//
// It parses commands with cobra, loads the layered configuration, opens the
// local vault and wires the client services. Storage and the server adapter
// are opened lazily so that commands such as version and passgen work without
// a configured server.
package client
