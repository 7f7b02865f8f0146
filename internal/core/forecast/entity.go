package forecast

import (
	"fmt"
	"math"

	"weatheredge.app/pkg/validation"
)

// Forecast is an upstream forecast payload, proxied verbatim
type Forecast struct {
	Body     []byte
	CacheHit bool
}

// Request represents a forecast lookup for a coordinate pair
type Request struct {
	Lat float64
	Lon float64
}

// IsValid validates the coordinate range
func (r *Request) IsValid() error {
	if !validation.IsLatitude(r.Lat) {
		return fmt.Errorf("lat must be between -90 and 90")
	}
	if !validation.IsLongitude(r.Lon) {
		return fmt.Errorf("lon must be between -180 and 180")
	}
	return nil
}

// Quantize rounds coordinates to two decimals (about 1 km) so nearby lookups
// share a cache entry
func (r Request) Quantize() Request {
	return Request{Lat: round2(r.Lat), Lon: round2(r.Lon)}
}

// CacheKey is the cache key of the quantized coordinates
func (r Request) CacheKey() string {
	q := r.Quantize()
	return fmt.Sprintf("forecast:%.2f:%.2f", q.Lat, q.Lon)
}

func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}
