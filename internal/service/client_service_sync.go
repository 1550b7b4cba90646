// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-manifest-sync/internal/adapter"
	"github.com/MKhiriev/go-manifest-sync/internal/config"
	"github.com/MKhiriev/go-manifest-sync/internal/logger"
	"github.com/MKhiriev/go-manifest-sync/internal/store"
	"github.com/MKhiriev/go-manifest-sync/internal/utils"
	"github.com/MKhiriev/go-manifest-sync/models"
)

type clientSyncService struct {
	tokens  store.TokenRepository
	files   store.FileStorageProvider
	locker  store.SourceLocker
	fetcher adapter.ManifestFetcher

	parallelism int

	flight singleflight.Group

	mu     sync.RWMutex
	states map[string]models.SyncState

	logger *logger.Logger
}

// NewClientSyncService builds the sync driver over the given stores and
// manifest fetcher. cfg.Parallelism bounds how many entries of one manifest
// are ensured at once.
func NewClientSyncService(storages *store.Storages, fetcher adapter.ManifestFetcher, cfg config.Workers, log *logger.Logger) ClientSyncService {
	parallelism := cfg.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}

	return &clientSyncService{
		tokens:      storages.TokenRepository,
		files:       storages.Files,
		locker:      storages.Locker,
		fetcher:     fetcher,
		parallelism: parallelism,
		states:      make(map[string]models.SyncState),
		logger:      log,
	}
}

func (s *clientSyncService) Sync(ctx context.Context, sourceID string) (models.SyncResult, error) {
	if strings.TrimSpace(sourceID) == "" {
		return models.SyncResult{SourceID: sourceID}, fmt.Errorf("%w: %q", ErrInvalidSourceID, sourceID)
	}

	for {
		// callers joining a running pass get its result; the pass itself
		// runs under the context of the caller that started it
		led := false
		ch := s.flight.DoChan(sourceID, func() (any, error) {
			led = true
			return s.sync(ctx, sourceID)
		})

		select {
		case res := <-ch:
			result, _ := res.Val.(models.SyncResult)
			if !led && isContextError(res.Err) && ctx.Err() == nil {
				// the pass we joined was cancelled by its starter, not by us
				s.logger.WithSource(sourceID).Debug().Err(res.Err).Msg("joined sync pass was cancelled, starting a new one")
				continue
			}
			if res.Shared && !led {
				s.logger.WithSource(sourceID).Debug().Msg("joined running sync pass")
			}
			return result, res.Err
		case <-ctx.Done():
			return models.SyncResult{SourceID: sourceID}, ctx.Err()
		}
	}
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (s *clientSyncService) sync(ctx context.Context, sourceID string) (models.SyncResult, error) {
	log := s.logger.WithSource(sourceID)
	ctx = log.WithContext(utils.WithSourceID(ctx, sourceID))

	result := models.SyncResult{SourceID: sourceID}

	unlock, err := s.locker.TryLock(sourceID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrSourceLocked):
			return result, fmt.Errorf("%w: %w", ErrSyncInProgress, err)
		case errors.Is(err, store.ErrInvalidSourceID):
			return result, fmt.Errorf("%w: %w", ErrInvalidSourceID, err)
		}
		return result, fmt.Errorf("lock source %s: %w", sourceID, err)
	}
	defer func() {
		if err := unlock(); err != nil {
			log.Warn().Err(err).Msg("failed to release source lock")
		}
	}()

	s.setState(log, sourceID, models.SyncStateFetching)

	committed, err := s.tokens.GetCommittedToken(ctx, sourceID)
	if err != nil {
		return result, s.fail(log, sourceID, &PersistError{SourceID: sourceID, Op: "read", Err: err})
	}
	result.NewToken = committed

	snapshot, err := s.fetcher.FetchManifest(ctx, sourceID, committed)
	if err != nil {
		return result, s.fail(log, sourceID, &FetchError{SourceID: sourceID, Err: err})
	}

	s.setState(log, sourceID, models.SyncStateComparing)

	if snapshot.Token() == committed {
		log.Info().Str("token", committed).Msg("manifest unchanged, nothing to apply")
		s.setState(log, sourceID, models.SyncStateIdle)
		return result, nil
	}

	s.setState(log, sourceID, models.SyncStateApplying)
	log.Info().
		Str("committed_token", committed).
		Str("manifest_token", snapshot.Token()).
		Int("entries", snapshot.Len()).
		Msg("applying manifest")

	files, err := s.files.ForSource(sourceID)
	if err != nil {
		return result, s.fail(log, sourceID, fmt.Errorf("open file storage: %w", err))
	}

	if err = s.applyEntries(ctx, files, snapshot.Entries()); err != nil {
		var entryErr *EntryError
		if errors.As(err, &entryErr) {
			failed := entryErr.Entry
			result.FailedEntry = &failed
		}
		return result, s.fail(log, sourceID, err)
	}

	// a cancelled pass never commits, even when every entry made it
	if err = ctx.Err(); err != nil {
		return result, s.fail(log, sourceID, err)
	}

	s.setState(log, sourceID, models.SyncStateCommitting)

	if err = s.tokens.SetCommittedToken(ctx, sourceID, snapshot.Token()); err != nil {
		return result, s.fail(log, sourceID, &PersistError{SourceID: sourceID, Op: "write", Err: err})
	}

	result.Applied = true
	result.NewToken = snapshot.Token()

	log.Info().Str("token", result.NewToken).Msg("manifest committed")
	s.setState(log, sourceID, models.SyncStateIdle)

	return result, nil
}

// applyEntries ensures every entry, at most s.parallelism at a time. The
// first failure cancels the entries still running and stops dispatching;
// it returns only after every dispatched entry has finished.
func (s *clientSyncService) applyEntries(ctx context.Context, files store.FileStorage, entries []models.FileEntry) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)

	for _, entry := range entries {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := files.EnsureFile(gctx, entry); err != nil {
				// an entry interrupted by cancellation did not fail itself
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				return &EntryError{Entry: entry, Err: err}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func (s *clientSyncService) fail(log *logger.Logger, sourceID string, err error) error {
	s.setState(log, sourceID, models.SyncStateFailed)
	log.Error().Err(err).Msg("sync pass failed")
	s.setState(log, sourceID, models.SyncStateIdle)
	return err
}

func (s *clientSyncService) setState(log *logger.Logger, sourceID string, next models.SyncState) {
	s.mu.Lock()
	prev := s.states[sourceID]
	s.states[sourceID] = next
	s.mu.Unlock()

	log.Debug().Stringer("from", prev).Stringer("to", next).Msg("sync state changed")
}

func (s *clientSyncService) State(sourceID string) models.SyncState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.states[sourceID]
}

func (s *clientSyncService) Status(ctx context.Context, sourceID string) (models.SyncStatus, error) {
	if strings.TrimSpace(sourceID) == "" {
		return models.SyncStatus{}, fmt.Errorf("%w: %q", ErrInvalidSourceID, sourceID)
	}

	committed, err := s.tokens.GetCommittedState(ctx, sourceID)
	if err != nil {
		return models.SyncStatus{}, &PersistError{SourceID: sourceID, Op: "read", Err: err}
	}

	return models.SyncStatus{
		SourceID:    sourceID,
		State:       s.State(sourceID),
		Token:       committed.Token,
		CommittedAt: committed.CommittedAt,
	}, nil
}
