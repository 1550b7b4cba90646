package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-manifest-sync/internal/logger"
)

// newTestHandler builds a Handler with a nop logger and no services.
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func TestWithTraceID_ReusesOrGenerates(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "incoming header reused", incoming: "my-custom-trace-id"},
		{name: "generated when absent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			req := httptest.NewRequest(http.MethodGet, "/api/sync/default", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rr := httptest.NewRecorder()
			newTestHandler().withTraceID(next).ServeHTTP(rr, req)

			got := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)
			assert.True(t, nextCalled)

			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, got)
				return
			}
			id, err := uuid.Parse(got)
			require.NoError(t, err, "generated trace ID must be a UUID, got %q", got)
			assert.Equal(t, uuid.Version(7), id.Version())
		})
	}
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := newTestHandler()
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	seen := make(map[string]struct{})

	for range 50 {
		rr := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rr.Header().Get(traceIDHeader)
		_, dup := seen[id]
		require.False(t, dup, "duplicate trace ID %s", id)
		seen[id] = struct{}{}
	}
}

func TestWithTraceID_LoggerInContextCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerologTo(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside handler")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-context-test")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"trace-context-test"`)
	assert.Contains(t, buf.String(), `"remote_addr":"192.0.2.1:1234"`)
	assert.Contains(t, buf.String(), "inside handler")
}
