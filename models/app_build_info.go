// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NotAvailable stands in for build fields that were not stamped at link time.
const NotAvailable = "N/A"

// AppBuildInfo is the build metadata injected into cmd/server via ldflags.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }
func (a AppBuildInfo) BuildDate() string    { return a.date }
func (a AppBuildInfo) BuildCommit() string  { return a.commit }

// VersionResponse renders the metadata served by GET /api/version.
// fallbackVersion replaces a version that is empty or NotAvailable; an empty
// date or commit is reported as NotAvailable.
func (a AppBuildInfo) VersionResponse(fallbackVersion string) VersionResponse {
	version := a.version
	if version == "" || version == NotAvailable {
		version = fallbackVersion
	}

	return VersionResponse{
		Version: version,
		Date:    orNotAvailable(a.date),
		Commit:  orNotAvailable(a.commit),
	}
}

func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
