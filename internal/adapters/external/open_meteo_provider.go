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

	"weatheredge.app/internal/ports"
	"weatheredge.app/pkg/errors"
)

const OpenMeteoProviderName = "open-meteo"

// Variables requested from Open-Meteo, matching what the weather UI renders
const (
	openMeteoCurrent = "temperature_2m,relative_humidity_2m,apparent_temperature,weather_code,wind_speed_10m"
	openMeteoHourly  = "temperature_2m,precipitation_probability,weather_code"
	openMeteoDaily   = "weather_code,temperature_2m_max,temperature_2m_min,sunrise,sunset"
)

// OpenMeteoProviderAdapter implements the ForecastProvider port for Open-Meteo
type OpenMeteoProviderAdapter struct {
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

type OpenMeteoProviderParams struct {
	BaseURL string
	Timeout time.Duration
	Client  HTTPClient
	Logger  ports.Logger
}

func NewOpenMeteoProviderAdapter(params OpenMeteoProviderParams) *OpenMeteoProviderAdapter {
	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.open-meteo.com/v1"
	}

	client := params.Client
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	return &OpenMeteoProviderAdapter{
		baseURL: baseURL,
		client:  client,
		logger:  params.Logger,
	}
}

// GetForecast returns the raw Open-Meteo JSON document for the coordinates
func (p *OpenMeteoProviderAdapter) GetForecast(ctx context.Context, lat, lon float64) ([]byte, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("current", openMeteoCurrent)
	params.Set("hourly", openMeteoHourly)
	params.Set("daily", openMeteoDaily)
	params.Set("timezone", "auto")

	req, err := newGetRequest(ctx, p.baseURL+"/forecast?"+params.Encode())
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to build Open-Meteo request", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to call Open-Meteo", err)
	}
	defer closeBody(resp.Body, p.logger, OpenMeteoProviderName)

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("Open-Meteo returned status %d", resp.StatusCode), nil)
	}

	body, err := readBody(resp.Body)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to read Open-Meteo response", err)
	}
	if !json.Valid(body) {
		return nil, errors.NewExternalAPIError("Open-Meteo returned invalid JSON", nil)
	}

	return body, nil
}

func (p *OpenMeteoProviderAdapter) GetProviderName() string {
	return OpenMeteoProviderName
}
