package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"weatheredge.app/internal/ports"
	"weatheredge.app/pkg/errors"
)

const NominatimProviderName = "nominatim"

// NominatimProviderAdapter implements the GeocodingProvider port for OpenStreetMap Nominatim.
// Nominatim's usage policy requires an identifying User-Agent and at most one
// request per second, so every call waits on a shared limiter.
type NominatimProviderAdapter struct {
	baseURL   string
	userAgent string
	client    HTTPClient
	limiter   *rate.Limiter
	logger    ports.Logger
}

// NominatimProviderParams holds parameters for creating the Nominatim provider
type NominatimProviderParams struct {
	BaseURL     string
	UserAgent   string
	Timeout     time.Duration
	MinInterval time.Duration
	Client      HTTPClient
	Logger      ports.Logger
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func NewNominatimProviderAdapter(params NominatimProviderParams) (*NominatimProviderAdapter, error) {
	if strings.TrimSpace(params.UserAgent) == "" {
		return nil, errors.NewConfigurationError("nominatim requires a User-Agent", nil)
	}

	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}

	client := params.Client
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	var limiter *rate.Limiter
	if params.MinInterval > 0 {
		limiter = rate.NewLimiter(rate.Every(params.MinInterval), 1)
	}

	return &NominatimProviderAdapter{
		baseURL:   baseURL,
		userAgent: params.UserAgent,
		client:    client,
		limiter:   limiter,
		logger:    params.Logger,
	}, nil
}

// Search looks up a free-text place. An empty result is not an error.
func (p *NominatimProviderAdapter) Search(ctx context.Context, query string) ([]ports.GeocodeCandidate, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.NewValidationError("query cannot be empty")
	}

	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, errors.NewExternalAPIError("nominatim rate limiter aborted", err)
		}
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("q", query)

	req, err := newGetRequest(ctx, p.baseURL+"/search?"+params.Encode())
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to build Nominatim request", err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to call Nominatim", err)
	}
	defer closeBody(resp.Body, p.logger, NominatimProviderName)

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("Nominatim returned status %d", resp.StatusCode), nil)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, errors.NewExternalAPIError("failed to decode Nominatim response", err)
	}

	candidates := make([]ports.GeocodeCandidate, 0, len(places))
	for _, place := range places {
		lat, latErr := strconv.ParseFloat(place.Lat, 64)
		lon, lonErr := strconv.ParseFloat(place.Lon, 64)
		if latErr != nil || lonErr != nil {
			return nil, errors.NewExternalAPIError(
				fmt.Sprintf("Nominatim returned invalid coordinates %q,%q", place.Lat, place.Lon), nil)
		}
		candidates = append(candidates, ports.GeocodeCandidate{
			Latitude:    lat,
			Longitude:   lon,
			DisplayName: place.DisplayName,
		})
	}

	return candidates, nil
}

func (p *NominatimProviderAdapter) GetProviderName() string {
	return NominatimProviderName
}
