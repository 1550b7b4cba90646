package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-manifest-sync/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

type clientSyncJob struct {
	syncService ClientSyncService
	sources     []string
	interval    time.Duration
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a clientSyncJob that calls syncService.Sync for
// every source on a ticker. interval is used by Run. The job is idle until
// Start or Run is called.
func NewClientSyncJob(syncService ClientSyncService, sources []string, interval time.Duration, log *logger.Logger) ClientSyncJob {
	return &clientSyncJob{
		syncService: syncService,
		sources:     append([]string(nil), sources...),
		interval:    interval,
		logger:      log,
	}
}

// Start implements ClientSyncJob. Failures are logged and left for the next
// tick; the job never retries within a tick.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		_ = j.SyncAll(jobCtx)

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = j.SyncAll(jobCtx)
			}
		}
	}()
}

// Stop implements ClientSyncJob. Safe to call when the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Run implements ClientSyncJob and the workers.Worker contract.
func (j *clientSyncJob) Run(ctx context.Context) {
	j.Start(ctx, j.interval)
	<-ctx.Done()
	j.Stop()
}

func (j *clientSyncJob) SyncAll(ctx context.Context) error {
	var errs []error
	for _, sourceID := range j.sources {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}

		result, err := j.syncService.Sync(ctx, sourceID)
		if err != nil {
			j.logger.WithSource(sourceID).Err(err).Msg("scheduled sync failed")
			errs = append(errs, err)
			continue
		}

		j.logger.WithSource(sourceID).Debug().
			Bool("applied", result.Applied).
			Str("token", result.NewToken).
			Msg("scheduled sync finished")
	}
	return errors.Join(errs...)
}
