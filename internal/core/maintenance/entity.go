package maintenance

import "math"

// MessageNotAllowed is returned by every admin operation in production
const MessageNotAllowed = "Not allowed in production"

// DefaultCities are prewarmed when the caller does not name any
var DefaultCities = []string{
	"Tokyo",
	"New York",
	"London",
	"Paris",
	"Sydney",
	"Sao Paulo",
	"Cairo",
	"Mumbai",
	"Moscow",
	"Toronto",
}

// EvictParams carries an optional TTL override in milliseconds
type EvictParams struct {
	TTLms *int64
}

// EvictResult reports how many cache rows were removed and the cutoff used
type EvictResult struct {
	Deleted int64
	Cutoff  int64 // epoch milliseconds
}

type PrewarmParams struct {
	Cities []string
}

// CityResult is the settled outcome of prewarming one city
type CityResult struct {
	City   string
	OK     bool
	Source string
	Error  string
}

type PrewarmResult struct {
	Count   int
	Results []CityResult
}

// ttlOverride returns the caller's TTL in milliseconds when it is positive
func (p EvictParams) ttlOverride() (int64, bool) {
	if p.TTLms == nil || *p.TTLms <= 0 {
		return 0, false
	}
	return *p.TTLms, true
}

// cutoffBefore returns nowMs - ttlMs, saturating at math.MinInt64
func cutoffBefore(nowMs, ttlMs int64) int64 {
	if ttlMs > 0 && nowMs < math.MinInt64+ttlMs {
		return math.MinInt64
	}
	return nowMs - ttlMs
}

func (p PrewarmParams) cities() []string {
	if len(p.Cities) == 0 {
		out := make([]string, len(DefaultCities))
		copy(out, DefaultCities)
		return out
	}
	return p.Cities
}
