// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the local persistence of the sync client: the
// committed manifest token per source (SQLite or PostgreSQL), the files
// materialised under the sync root, and the cross-process source locks.
package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-manifest-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TokenRepository persists the last fully applied manifest token of each
// source.
type TokenRepository interface {
	// GetCommittedToken returns the committed token of sourceID, or "" when
	// nothing was committed yet.
	GetCommittedToken(ctx context.Context, sourceID string) (string, error)

	// SetCommittedToken atomically replaces the committed token of sourceID.
	// Readers observe either the previous token or token, never anything
	// in between.
	SetCommittedToken(ctx context.Context, sourceID, token string) error

	// GetCommittedState returns the full committed record of sourceID. A
	// source that was never committed yields an empty Token and nil
	// CommittedAt.
	GetCommittedState(ctx context.Context, sourceID string) (models.CommittedState, error)
}

// FileStorage materialises manifest entries on the local disk.
type FileStorage interface {
	// EnsureFile makes the local file for entry match it. Calling it for a
	// file that already matches is a no-op, so it is safe to repeat.
	EnsureFile(ctx context.Context, entry models.FileEntry) error
}

// FileStorageProvider hands out the FileStorage rooted at one source's
// directory.
type FileStorageProvider interface {
	ForSource(sourceID string) (FileStorage, error)
}

// SourceLocker guards a source against concurrent passes from other
// processes sharing the same data directory.
type SourceLocker interface {
	// TryLock acquires the lock of sourceID without blocking. It returns
	// [ErrSourceLocked] when another holder exists. The returned function
	// releases the lock.
	TryLock(sourceID string) (unlock func() error, err error)
}

// Downloader streams the content of an entry. It is satisfied by the
// manifest server adapter.
type Downloader interface {
	DownloadFile(ctx context.Context, entry models.FileEntry, w io.Writer) (int64, error)
}

// ErrorClassificator decides whether a database error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
