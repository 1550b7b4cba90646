package adapter

import "errors"

// Sentinel errors returned by the manifest server adapter. HTTP status codes
// are mapped onto them by mapHTTPError so callers can use [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrMalformedManifest is returned when the server answers with a
	// manifest that has no version token, an entry without a filename, or two
	// entries sharing a filename.
	ErrMalformedManifest = errors.New("malformed manifest")

	// ErrNoDownloadURL is returned by DownloadFile for an entry that does not
	// say where its content lives.
	ErrNoDownloadURL = errors.New("entry has no download url")
)
