package store

import "errors"

// Sentinel errors returned by the store package. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrUnsafePath is returned when a manifest entry path is absolute or
	// escapes the sync root (e.g. "../etc/passwd").
	ErrUnsafePath = errors.New("entry path escapes sync root")

	// ErrChecksumMismatch is returned when downloaded content does not hash
	// to the digest announced by the manifest entry.
	ErrChecksumMismatch = errors.New("content checksum mismatch")

	// ErrSizeMismatch is returned when downloaded content is not as long as
	// the manifest entry says.
	ErrSizeMismatch = errors.New("content size mismatch")

	// ErrInvalidEntry is returned for an entry whose metadata cannot be
	// used, such as an unparseable content hash.
	ErrInvalidEntry = errors.New("invalid manifest entry")

	// ErrSourceLocked is returned by [SourceLocker.TryLock] when another
	// process already holds the lock for the source.
	ErrSourceLocked = errors.New("source is locked by another process")

	// ErrInvalidSourceID is returned for a source identifier that cannot be
	// used as a directory or lock file name.
	ErrInvalidSourceID = errors.New("invalid source id")

	// ErrRetryable marks database failures that are classified as transient
	// (lost connection, serialization failure, busy database). It is joined
	// with the underlying error, never returned alone.
	ErrRetryable = errors.New("transient database error")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan committed token row")
)
