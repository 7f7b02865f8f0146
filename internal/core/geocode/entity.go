package geocode

import (
	"fmt"
	"strings"
	"time"
)

// Source tells where a resolution was served from
type Source string

const (
	SourceCache    Source = "cache"
	SourceUpstream Source = "upstream"
)

// Request represents a free-text place lookup
type Request struct {
	Query string
}

// Result holds resolved coordinates and their origin
type Result struct {
	Latitude  float64
	Longitude float64
	Source    Source
	// Provider names the upstream service; empty for cache hits
	Provider string
}

// IsValid validates the lookup request
func (r *Request) IsValid() error {
	if strings.TrimSpace(r.Query) == "" {
		return fmt.Errorf("query cannot be empty")
	}
	return nil
}

// Label is the public source tag: "cache" or the upstream provider name
func (r *Result) Label() string {
	if r.Source == SourceCache || r.Provider == "" {
		return string(r.Source)
	}
	return r.Provider
}

// NormalizeQuery canonicalizes a place name into its cache key: trimmed,
// lowercased, with every whitespace run collapsed to a single space.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.Join(strings.Fields(query), " "))
}

// IsFresh reports whether a row written at updatedAt (epoch ms) may still be
// served at now. The boundary is inclusive.
func IsFresh(updatedAt int64, now time.Time, ttl time.Duration) bool {
	return now.UnixMilli()-updatedAt <= ttl.Milliseconds()
}
