package models

import "time"

// SyncState is the phase a sync pass for one source is currently in.
type SyncState int

const (
	// SyncStateIdle means no pass is running for the source.
	SyncStateIdle SyncState = iota
	// SyncStateFetching means the manifest request is in flight.
	SyncStateFetching
	// SyncStateComparing means the fetched token is being compared with the
	// committed one.
	SyncStateComparing
	// SyncStateApplying means manifest entries are being ensured locally.
	SyncStateApplying
	// SyncStateCommitting means every entry succeeded and the new token is
	// being written.
	SyncStateCommitting
	// SyncStateFailed means the last pass stopped without committing.
	SyncStateFailed
)

var syncStateNames = map[SyncState]string{
	SyncStateIdle:       "idle",
	SyncStateFetching:   "fetching",
	SyncStateComparing:  "comparing",
	SyncStateApplying:   "applying",
	SyncStateCommitting: "committing",
	SyncStateFailed:     "failed",
}

// String implements fmt.Stringer.
func (s SyncState) String() string {
	if name, ok := syncStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler so states render as names
// in JSON responses and log fields.
func (s SyncState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// CommittedState is the persisted record of the last manifest version that
// was fully applied for a source.
type CommittedState struct {
	// SourceID identifies the remote source.
	SourceID string `json:"source_id"`

	// Token is the committed eTag. Empty means nothing was committed yet.
	Token string `json:"committed_token"`

	// CommittedAt is when Token was written. Nil before the first commit.
	CommittedAt *time.Time `json:"committed_at,omitempty"`
}

// SyncResult is returned by one sync pass.
type SyncResult struct {
	// SourceID identifies the remote source the pass ran against.
	SourceID string `json:"source_id"`

	// Applied is true only when a new token was committed by this pass.
	// A no-op pass (token already current) and a failed pass both report
	// false.
	Applied bool `json:"applied"`

	// NewToken is the committed token after the pass. For a failed pass it
	// is the token that was committed before the pass started.
	NewToken string `json:"new_token"`

	// FailedEntry is the entry that stopped the pass, if any.
	FailedEntry *FileEntry `json:"failed_entry,omitempty"`
}

// SyncStatus is the snapshot of a source exposed by the control API.
type SyncStatus struct {
	SourceID    string     `json:"source_id"`
	State       SyncState  `json:"state"`
	Token       string     `json:"committed_token"`
	CommittedAt *time.Time `json:"committed_at,omitempty"`
}
