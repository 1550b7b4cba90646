package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockFileSuffix = ".sync.lock"

// fileSourceLocker implements [SourceLocker] with one advisory lock file per
// source under dir.
type fileSourceLocker struct {
	dir string
}

// NewSourceLocker constructs a [SourceLocker] keeping its lock files in dir.
func NewSourceLocker(dir string) SourceLocker {
	return &fileSourceLocker{dir: dir}
}

// TryLock implements [SourceLocker]. The lock file is left on disk after
// unlocking; removing it would let a concurrent locker hold a lock on an
// unlinked file.
func (l *fileSourceLocker) TryLock(sourceID string) (func() error, error) {
	if err := validateSourceID(sourceID); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(l.dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create lock directory %s: %w", l.dir, err)
	}

	fl := flock.New(filepath.Join(l.dir, sourceID+lockFileSuffix))

	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to lock source %s: %w", sourceID, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrSourceLocked, sourceID)
	}

	return func() error {
		if !fl.Locked() {
			return nil
		}
		if err := fl.Unlock(); err != nil {
			return fmt.Errorf("failed to unlock source %s: %w", sourceID, err)
		}
		return nil
	}, nil
}
