package store

import (
	"context"
	"path/filepath"

	"github.com/MKhiriev/go-manifest-sync/internal/config"
	"github.com/MKhiriev/go-manifest-sync/internal/logger"
)

// lockDirName is the directory under the sync root holding lock files.
const lockDirName = ".locks"

// Storages aggregates every store used by the sync client.
type Storages struct {
	TokenRepository TokenRepository
	Files           FileStorageProvider
	Locker          SourceLocker

	db *DB
}

// NewStorages opens the token database and prepares the file storage and
// locks under cfg.Files.RootDir.
func NewStorages(ctx context.Context, cfg config.Storage, downloader Downloader, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		TokenRepository: NewTokenRepository(db, log),
		Files:           NewFileStorages(cfg.Files.RootDir, downloader, log),
		Locker:          NewSourceLocker(filepath.Join(cfg.Files.RootDir, lockDirName)),
		db:              db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
