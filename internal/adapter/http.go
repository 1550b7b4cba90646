package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-manifest-sync/internal/config"
	"github.com/MKhiriev/go-manifest-sync/internal/logger"
	"github.com/MKhiriev/go-manifest-sync/internal/utils"
	"github.com/MKhiriev/go-manifest-sync/models"
	"github.com/dustin/go-humanize"
	"github.com/go-resty/resty/v2"
)

const (
	manifestPath   = "/api/manifest/{sourceID}"
	sourceIDHeader = "X-Source-ID"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchManifest implements [ManifestFetcher]. It GETs
// /api/manifest/{sourceID}. The version token is taken from the body's
// "etag" field, falling back to the ETag response header.
func (h *httpServerAdapter) FetchManifest(ctx context.Context, sourceID, knownToken string) (models.ManifestSnapshot, error) {
	req := h.request(ctx).
		SetHeader("Accept", "application/json").
		SetPathParam("sourceID", sourceID)
	if knownToken != "" {
		req.SetHeader("If-None-Match", quoteETag(knownToken))
	}

	resp, err := req.Get(manifestPath)
	if err != nil {
		return models.ManifestSnapshot{}, fmt.Errorf("manifest request: %w", err)
	}

	if resp.StatusCode() == http.StatusNotModified {
		if knownToken == "" {
			return models.ManifestSnapshot{}, fmt.Errorf("%w: not modified without a known token", ErrMalformedManifest)
		}
		h.logger.Debug().Str("source_id", sourceID).Msg("manifest not modified")
		return models.NewManifestSnapshot(knownToken, nil), nil
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ManifestSnapshot{}, err
	}

	var snapshot models.ManifestSnapshot
	if err = json.Unmarshal(resp.Body(), &snapshot); err != nil {
		return models.ManifestSnapshot{}, fmt.Errorf("%w: %v", ErrMalformedManifest, err)
	}

	if snapshot.Token() == "" {
		snapshot = models.NewManifestSnapshot(unquoteETag(resp.Header().Get("ETag")), snapshot.Entries())
	}
	if err = validateManifest(snapshot); err != nil {
		return models.ManifestSnapshot{}, err
	}

	h.logger.Debug().
		Str("source_id", sourceID).
		Str("etag", snapshot.Token()).
		Int("files", snapshot.Len()).
		Str("size", humanize.IBytes(uint64(len(resp.Body())))).
		Msg("manifest fetched")

	return snapshot, nil
}

// DownloadFile implements [FileDownloader]. entry.DownloadURL may be
// absolute or relative to the base URL.
func (h *httpServerAdapter) DownloadFile(ctx context.Context, entry models.FileEntry, w io.Writer) (int64, error) {
	if strings.TrimSpace(entry.DownloadURL) == "" {
		return 0, fmt.Errorf("%w: %s", ErrNoDownloadURL, entry.Path())
	}

	resp, err := h.request(ctx).
		SetDoNotParseResponse(true).
		Get(entry.DownloadURL)
	if err != nil {
		return 0, fmt.Errorf("download request %s: %w", entry.Path(), err)
	}

	raw := resp.RawBody()
	if raw != nil {
		defer raw.Close()
	}

	if err = mapRawHTTPError(resp); err != nil {
		return 0, fmt.Errorf("download %s: %w", entry.Path(), err)
	}
	if raw == nil {
		return 0, nil
	}

	n, err := io.Copy(w, raw)
	if err != nil {
		return n, fmt.Errorf("download %s: %w", entry.Path(), err)
	}

	return n, nil
}

// request starts a request carrying the source identifier from ctx, if any.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if sourceID, ok := utils.GetSourceIDFromContext(ctx); ok {
		req.SetHeader(sourceIDHeader, sourceID)
	}
	return req
}

func validateManifest(snapshot models.ManifestSnapshot) error {
	if snapshot.Token() == "" {
		return fmt.Errorf("%w: empty etag", ErrMalformedManifest)
	}

	seen := make(map[string]struct{}, snapshot.Len())
	for _, entry := range snapshot.Entries() {
		p := entry.Path()
		if p == "" {
			return fmt.Errorf("%w: entry without filename", ErrMalformedManifest)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%w: duplicate filename %q", ErrMalformedManifest, p)
		}
		seen[p] = struct{}{}
	}

	return nil
}

func quoteETag(token string) string {
	if strings.HasPrefix(token, `"`) || strings.HasPrefix(token, `W/"`) {
		return token
	}
	return `"` + token + `"`
}

// unquoteETag undoes quoteETag: it drops an optional weak prefix and exactly
// one pair of surrounding quotes.
func unquoteETag(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "W/")
	if len(v) >= 2 && strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) {
		return v[1 : len(v)-1]
	}
	return v
}
