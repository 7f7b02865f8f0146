// Package external provides adapters for services outside the process:
// upstream geocoding and forecast APIs, caches and the runtime flag store.
package external

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"weatheredge.app/internal/ports"
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

const maxResponseBytes = 4 << 20

func closeBody(body io.Closer, logger ports.Logger, provider string) {
	if err := body.Close(); err != nil && logger != nil {
		logger.Warn("Failed to close response body",
			ports.F("provider", provider),
			ports.F("error", err))
	}
}

func readBody(body io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(body, maxResponseBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxResponseBytes {
		return nil, fmt.Errorf("response exceeds %d bytes", maxResponseBytes)
	}
	return data, nil
}

func newGetRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}
