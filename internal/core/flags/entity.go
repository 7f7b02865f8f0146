package flags

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Known flag keys
const (
	KeyGeocodeCacheTTL  = "geocode_cache_ttl_ms"
	KeyForecastCacheTTL = "forecast_cache_ttl_ms"
	KeyFavoritesEnabled = "favorites_enabled"
	KeyVoiceSearch      = "voice_search_enabled"
	KeyPrewarmEnabled   = "prewarm_enabled"
)

// MaxMillis is the largest millisecond count a time.Duration can represent
const MaxMillis = int64(math.MaxInt64 / int64(time.Millisecond))

// Defaults returns the hardcoded flag values served when the store has no opinion
func Defaults(geocodeTTL, forecastTTL time.Duration) map[string]interface{} {
	return map[string]interface{}{
		KeyGeocodeCacheTTL:  geocodeTTL.Milliseconds(),
		KeyForecastCacheTTL: forecastTTL.Milliseconds(),
		KeyFavoritesEnabled: true,
		KeyVoiceSearch:      true,
		KeyPrewarmEnabled:   true,
	}
}

// MergeWithDefaults overlays remote flags onto defaults. Stored values win;
// defaults only fill keys the store does not define. Neither input is modified.
func MergeWithDefaults(remote, defaults map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(defaults)+len(remote))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range remote {
		if v == nil {
			continue
		}
		merged[k] = v
	}
	return merged
}

// ParseMillis interprets a raw flag value as a positive millisecond duration.
// Values beyond what a Duration holds saturate at MaxMillis.
func ParseMillis(raw string) (time.Duration, bool) {
	raw = strings.Trim(strings.TrimSpace(raw), `"`)
	if raw == "" {
		return 0, false
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		switch {
		case f >= float64(MaxMillis):
			ms = MaxMillis
		case f <= 0:
			return 0, false
		default:
			ms = int64(f)
		}
	}
	if ms <= 0 {
		return 0, false
	}
	if ms > MaxMillis {
		ms = MaxMillis
	}
	return time.Duration(ms) * time.Millisecond, true
}

// DecodeValue turns a stored string into its JSON value when it is valid JSON
// and keeps it as a plain string otherwise.
func DecodeValue(raw string) interface{} {
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}
