// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the sync client and
// the manifest server.
//
// [ManifestFetcher] retrieves the current manifest of a source and
// [FileDownloader] streams the content of one manifest entry. The package
// ships an HTTP/REST implementation of both ([NewHTTPServerAdapter]) built
// on resty.
//
// HTTP status codes are mapped to the sentinel values in errors.go by
// mapHTTPError so callers can use [errors.Is] (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-manifest-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ManifestFetcher retrieves manifests from the server.
type ManifestFetcher interface {
	// FetchManifest returns the manifest of sourceID as the server saw it at
	// one instant.
	//
	// knownToken is the token the caller already holds (empty if none). It
	// is sent as a conditional request; when the server reports that the
	// manifest has not changed, the returned snapshot carries knownToken and
	// no entries.
	//
	// A manifest without a token or with duplicate filenames is rejected
	// with [ErrMalformedManifest].
	FetchManifest(ctx context.Context, sourceID, knownToken string) (models.ManifestSnapshot, error)
}

// FileDownloader streams file content described by manifest entries.
type FileDownloader interface {
	// DownloadFile writes the content of entry to w and returns the number of
	// bytes written. It does not verify the content; that is the caller's job.
	DownloadFile(ctx context.Context, entry models.FileEntry, w io.Writer) (int64, error)
}

// ServerAdapter is the full manifest server client.
type ServerAdapter interface {
	ManifestFetcher
	FileDownloader
}
