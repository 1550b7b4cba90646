package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-manifest-sync/models"
)

// ClientSyncService brings the local copy of a source up to the manifest
// currently published by the server.
type ClientSyncService interface {
	// Sync runs one pass for sourceID: fetch the manifest, skip it when its
	// token is already committed, otherwise ensure every entry and commit
	// the new token. The token is committed only when every entry
	// succeeded and ctx is still live.
	//
	// Concurrent calls for the same source share a single pass. A pass held
	// by another process yields ErrSyncInProgress.
	//
	// On failure the result carries the previously committed token and,
	// for an entry failure, the entry that stopped the pass. The error is
	// a *FetchError, *EntryError or *PersistError when it comes from one of
	// those steps.
	Sync(ctx context.Context, sourceID string) (models.SyncResult, error)

	// State reports the phase the pass for sourceID is in.
	State(sourceID string) models.SyncState

	// Status combines State with the committed record of sourceID.
	Status(ctx context.Context, sourceID string) (models.SyncStatus, error)
}

// ClientSyncJob periodically syncs every configured source.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every source
	// once right away and then every interval, defaulting to 5 minutes if
	// interval is zero or negative. Any previously running job is stopped
	// before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()

	// Run starts the job and blocks until ctx is done.
	Run(ctx context.Context)

	// SyncAll runs one pass for every source in order and returns the
	// joined failures.
	SyncAll(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.BuildInfoView
}
