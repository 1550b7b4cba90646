package adapter

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody caps how much of an error response body is kept in the
// returned error message.
const maxErrorBody = 4 << 10

func mapHTTPError(resp *resty.Response) error {
	return mapStatus(resp.StatusCode(), string(resp.Body()))
}

// mapRawHTTPError is mapHTTPError for responses read with
// SetDoNotParseResponse, whose body is still unread.
func mapRawHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var body []byte
	if raw := resp.RawBody(); raw != nil {
		body, _ = io.ReadAll(io.LimitReader(raw, maxErrorBody))
	}
	return mapStatus(resp.StatusCode(), string(body))
}

func mapStatus(code int, body string) error {
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body = strings.TrimSpace(body)
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}

	switch code {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrTooManyRequests, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(code)
		}
		return fmt.Errorf("http %d: %s", code, body)
	}
}
