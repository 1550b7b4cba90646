package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-manifest-sync/internal/service"
	"github.com/MKhiriev/go-manifest-sync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrSyncInProgress:  http.StatusConflict,
	service.ErrInvalidSourceID: http.StatusBadRequest,
	store.ErrInvalidSourceID:   http.StatusBadRequest,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

// statusFromError maps the failing step of a sync pass onto a status code;
// typed step errors take precedence over the sentinels they wrap.
func statusFromError(err error) int {
	var (
		fetchErr   *service.FetchError
		entryErr   *service.EntryError
		persistErr *service.PersistError
	)
	switch {
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	case errors.As(err, &entryErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &persistErr):
		return http.StatusInternalServerError
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
