// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// FileEntry describes one file of a remote manifest: where it lives
// relative to the sync root and what it must look like once applied.
//
// The JSON shape follows the manifest server's file entry format.
type FileEntry struct {
	// Filename is the slash-separated path of the file relative to the sync
	// root. It is unique within one manifest.
	Filename string `json:"filename"`

	// ContentLength is the expected size of the file in bytes.
	ContentLength int64 `json:"contentLength"`

	// ContentType is the MIME type reported by the server.
	ContentType string `json:"contentType,omitempty"`

	// ContentHash is the expected digest in "<algo>:<hex>" form
	// (e.g. "md5:9e107d9d372bb6826bd81d3542a419d6"). A bare hex string
	// is treated as md5.
	ContentHash string `json:"md5hash"`

	// DownloadURL is where the file content can be fetched from. It may be
	// absolute or relative to the manifest server base URL.
	DownloadURL string `json:"downloadUrl"`
}

// Path returns the identity of the entry within its manifest.
func (e FileEntry) Path() string {
	return e.Filename
}

// ManifestSnapshot pairs a manifest version token (the server eTag) with the
// file entries that version consists of.
//
// A snapshot is immutable once constructed. Two snapshots describe the same
// version when their tokens are equal, whatever their entry lists contain.
type ManifestSnapshot struct {
	token   string
	entries []FileEntry
}

// NewManifestSnapshot builds a snapshot for token and entries. The entry
// slice is copied, so later changes to the caller's slice are not visible
// through the snapshot.
func NewManifestSnapshot(token string, entries []FileEntry) ManifestSnapshot {
	return ManifestSnapshot{
		token:   token,
		entries: cloneEntries(entries),
	}
}

// Token returns the opaque version marker of the snapshot.
func (m ManifestSnapshot) Token() string {
	return m.token
}

// Entries returns a copy of the entries in their original order.
func (m ManifestSnapshot) Entries() []FileEntry {
	return cloneEntries(m.entries)
}

// Len returns the number of entries.
func (m ManifestSnapshot) Len() int {
	return len(m.entries)
}

// Equal reports whether m and other describe the same manifest version.
// Only tokens are compared.
func (m ManifestSnapshot) Equal(other ManifestSnapshot) bool {
	return m.token == other.token
}

// String implements fmt.Stringer.
func (m ManifestSnapshot) String() string {
	return fmt.Sprintf("manifest(etag=%q, files=%d)", m.token, len(m.entries))
}

// manifestWire is the serialised form of ManifestSnapshot.
type manifestWire struct {
	ETag  string      `json:"etag"`
	Files []FileEntry `json:"files"`
}

// MarshalJSON implements json.Marshaler. Entry order is preserved.
func (m ManifestSnapshot) MarshalJSON() ([]byte, error) {
	files := m.entries
	if files == nil {
		files = []FileEntry{}
	}
	return json.Marshal(manifestWire{ETag: m.token, Files: files})
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *ManifestSnapshot) UnmarshalJSON(b []byte) error {
	var w manifestWire
	if err := json.Unmarshal(b, &w); err != nil {
		return fmt.Errorf("decode manifest snapshot: %w", err)
	}

	m.token = w.ETag
	m.entries = w.Files
	return nil
}

func cloneEntries(entries []FileEntry) []FileEntry {
	if entries == nil {
		return nil
	}
	out := make([]FileEntry, len(entries))
	copy(out, entries)
	return out
}
