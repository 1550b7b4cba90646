package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/MKhiriev/go-manifest-sync/internal/logger"
	"github.com/MKhiriev/go-manifest-sync/internal/utils"
	"github.com/MKhiriev/go-manifest-sync/models"
)

// localFileStorages is the default [FileStorageProvider]: one subdirectory
// of rootDir per source.
type localFileStorages struct {
	rootDir    string
	downloader Downloader
	names      *utils.UUIDGenerator
	logger     *logger.Logger
}

// NewFileStorages constructs a [FileStorageProvider] materialising files
// under rootDir with content fetched by downloader.
func NewFileStorages(rootDir string, downloader Downloader, log *logger.Logger) FileStorageProvider {
	return &localFileStorages{
		rootDir:    rootDir,
		downloader: downloader,
		names:      utils.NewUUIDGenerator(),
		logger:     log,
	}
}

// ForSource implements [FileStorageProvider].
func (s *localFileStorages) ForSource(sourceID string) (FileStorage, error) {
	if err := validateSourceID(sourceID); err != nil {
		return nil, err
	}

	return &localFileStorage{
		root:       filepath.Join(s.rootDir, sourceID),
		downloader: s.downloader,
		names:      s.names,
		logger:     s.logger,
	}, nil
}

// localFileStorage writes entries below root. Files are downloaded into a
// temporary sibling and renamed into place only after their size and digest
// check out, so a reader never sees a half-written or wrong file under the
// entry's name.
type localFileStorage struct {
	root       string
	downloader Downloader
	names      *utils.UUIDGenerator
	logger     *logger.Logger
}

// EnsureFile implements [FileStorage].
//
// A ContentLength of zero means "unknown" and is not checked; an empty
// ContentHash skips digest verification.
func (s *localFileStorage) EnsureFile(ctx context.Context, entry models.FileEntry) error {
	log := logger.FromContext(ctx)

	target, err := s.resolve(entry.Path())
	if err != nil {
		return err
	}

	want, err := utils.ParseContentHash(entry.ContentHash)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidEntry, entry.Path(), err)
	}

	s.sweepTempFiles(log, target)

	ok, err := fileMatches(target, entry.ContentLength, want)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", entry.Path(), err)
	}
	if ok {
		log.Debug().Str("path", entry.Path()).Msg("file already up to date")
		return nil
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	written, err := s.download(ctx, entry, target, want)
	if err != nil {
		return err
	}

	log.Debug().
		Str("path", entry.Path()).
		Str("size", humanize.IBytes(uint64(written))).
		Msg("file downloaded")

	return nil
}

func (s *localFileStorage) download(ctx context.Context, entry models.FileEntry, target string, want utils.ContentHash) (int64, error) {
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return 0, fmt.Errorf("create directory for %s: %w", entry.Path(), err)
	}

	tempPath := filepath.Join(dir, s.names.TempName(filepath.Base(target)))
	tempFile, err := os.OpenFile(tempPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, fmt.Errorf("create temp file for %s: %w", entry.Path(), err)
	}

	success := false
	defer func() {
		if !success {
			tempFile.Close()
			os.Remove(tempPath)
		}
	}()

	hasher := want.NewHasher()
	defer want.ReleaseHasher(hasher)

	written, err := s.downloader.DownloadFile(ctx, entry, io.MultiWriter(tempFile, hasher))
	if err != nil {
		return 0, err
	}

	if entry.ContentLength > 0 && written != entry.ContentLength {
		return 0, fmt.Errorf("%w: %s: want %d bytes, got %d", ErrSizeMismatch, entry.Path(), entry.ContentLength, written)
	}
	if !want.Matches(hasher.Sum(nil)) {
		return 0, fmt.Errorf("%w: %s", ErrChecksumMismatch, entry.Path())
	}

	if err = tempFile.Sync(); err != nil {
		return 0, fmt.Errorf("sync temp file for %s: %w", entry.Path(), err)
	}
	if err = tempFile.Close(); err != nil {
		return 0, fmt.Errorf("close temp file for %s: %w", entry.Path(), err)
	}

	// a cancelled pass must not leave a new file in place
	if err = ctx.Err(); err != nil {
		return 0, err
	}

	if err = os.Rename(tempPath, target); err != nil {
		return 0, fmt.Errorf("move %s into place: %w", entry.Path(), err)
	}

	success = true
	return written, nil
}

// sweepTempFiles removes temp downloads for target left behind by a pass
// that died before renaming them. Only one pass per source runs at a time,
// so none of them can still be in use.
func (s *localFileStorage) sweepTempFiles(log *logger.Logger, target string) {
	dir, base := filepath.Split(target)

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("dir", dir).Msg("cannot list directory for stale temp files")
		}
		return
	}

	for _, de := range dirEntries {
		if de.IsDir() || !s.names.IsTempName(base, de.Name()) {
			continue
		}
		stale := filepath.Join(dir, de.Name())
		if err = os.Remove(stale); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("file", stale).Msg("cannot remove stale temp file")
			continue
		}
		log.Debug().Str("file", stale).Msg("removed stale temp file")
	}
}

// resolve maps a slash-separated entry path onto the local root.
func (s *localFileStorage) resolve(p string) (string, error) {
	local := filepath.FromSlash(p)
	if p == "" || !filepath.IsLocal(local) {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, p)
	}
	return filepath.Join(s.root, local), nil
}

// fileMatches reports whether the file at path already satisfies the
// expected size and digest. A missing file does not match.
func fileMatches(path string, size int64, want utils.ContentHash) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !info.Mode().IsRegular() {
		return false, nil
	}
	if size > 0 && info.Size() != size {
		return false, nil
	}
	if want.IsZero() {
		// nothing else to compare; only trust a known size
		return size > 0, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	hasher := want.NewHasher()
	defer want.ReleaseHasher(hasher)

	if _, err = io.Copy(hasher, f); err != nil {
		return false, err
	}

	return want.Matches(hasher.Sum(nil)), nil
}

func validateSourceID(sourceID string) error {
	if strings.TrimSpace(sourceID) == "" || strings.HasPrefix(sourceID, ".") || !filepath.IsLocal(sourceID) || strings.ContainsAny(sourceID, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidSourceID, sourceID)
	}
	return nil
}
