package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-manifest-sync/models"
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrSyncInProgress is returned when another process holds the lock of
	// the source being synced.
	ErrSyncInProgress = errors.New("sync already in progress")

	ErrInvalidSourceID = errors.New("invalid source id")
)

// FetchError reports that the manifest of a source could not be fetched.
// No entry work was done and the committed token is unchanged.
type FetchError struct {
	SourceID string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch manifest of %s: %v", e.SourceID, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// EntryError reports the manifest entry that stopped a sync pass.
type EntryError struct {
	Entry models.FileEntry
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("apply entry %s: %v", e.Entry.Path(), e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// PersistError reports a failure to read or write the committed token.
type PersistError struct {
	SourceID string
	Op       string
	Err      error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s committed token of %s: %v", e.Op, e.SourceID, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
