package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-manifest-sync/internal/logger"
)

// requestWithLogger puts a buffer-backed logger into the request context the
// way withTraceID does.
func requestWithLogger(method, target string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		target       string
		status       int
		body         string
		wantInLogs   []string
	}{
		{
			name:       "sync accepted",
			method:     http.MethodPost,
			target:     "/api/sync/default",
			status:     http.StatusOK,
			body:       `{"applied":true}`,
			wantInLogs: []string{`"method":"POST"`, `"uri":"/api/sync/default"`, `"status":200`, `"size":16`},
		},
		{
			name:       "conflict",
			method:     http.MethodPost,
			target:     "/api/sync/default",
			status:     http.StatusConflict,
			wantInLogs: []string{`"status":409`, `"size":0`, `"size_human":"0 B"`},
		},
		{
			name:       "query preserved",
			method:     http.MethodGet,
			target:     "/api/sync/default?verbose=1",
			status:     http.StatusOK,
			body:       "ok",
			wantInLogs: []string{`"uri":"/api/sync/default?verbose=1"`, `"duration":`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			rr := httptest.NewRecorder()
			newTestHandler().withLogging(next).ServeHTTP(rr, requestWithLogger(tt.method, tt.target, &buf))

			assert.Equal(t, tt.status, rr.Code)
			for _, want := range tt.wantInLogs {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_ImplicitStatusAndSize(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 1024)))
		_, _ = w.Write([]byte(strings.Repeat("b", 1024)))
	})

	rr := httptest.NewRecorder()
	newTestHandler().withLogging(next).ServeHTTP(rr, requestWithLogger(http.MethodGet, "/x", &buf))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"size":2048`)
	assert.Contains(t, buf.String(), `"size_human":"2.0 KiB"`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	assert.Panics(t, func() {
		newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestWithLogging_NopLogger(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/nop", nil)
	req = req.WithContext(logger.Nop().WithContext(req.Context()))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		newTestHandler().withLogging(next).ServeHTTP(rr, req)
	})
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

// ---- responseWriter ----

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusInternalServerError)
	n, err := w.Write([]byte("abc"))

	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusAccepted, w.status)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 3, w.size)
}

func zerologTo(buf *bytes.Buffer) zerolog.Logger {
	return zerolog.New(buf)
}

func TestWithLogging_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		status    int
		wantLevel string
	}{
		{status: http.StatusOK, wantLevel: `"level":"info"`},
		{status: http.StatusConflict, wantLevel: `"level":"warn"`},
		{status: http.StatusBadGateway, wantLevel: `"level":"error"`},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			var buf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), requestWithLogger(http.MethodPost, "/api/sync/default", &buf))

			assert.Contains(t, buf.String(), tt.wantLevel)
		})
	}
}

func TestWithLogging_NoWriteMeansOK(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), requestWithLogger(http.MethodGet, "/api/version/", &buf))

	assert.Contains(t, buf.String(), `"status":200`)
}
