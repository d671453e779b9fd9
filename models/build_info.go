// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// BuildInfo carries build-time metadata injected with linker flags.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo replaces empty values with "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	orNA := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}

	return BuildInfo{Version: orNA(version), Date: orNA(date), Commit: orNA(commit)}
}

// String renders the build info for the version command.
func (b BuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", b.Version, b.Date, b.Commit)
}
