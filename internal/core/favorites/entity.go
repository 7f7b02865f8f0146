package favorites

import (
	"fmt"
	"strings"

	"weatheredge.app/pkg/validation"
)

const MessageMissingDeviceID = "Missing X-Device-Id"

// Favorite is a city saved by one device
type Favorite struct {
	City    string
	Lat     float64
	Lon     float64
	AddedAt int64 // epoch milliseconds
}

// AddRequest is the body of a favorites insert. Coordinates are pointers so
// that a missing value can be told apart from zero.
type AddRequest struct {
	DeviceID string
	City     string
	Lat      *float64
	Lon      *float64
}

func (r *AddRequest) IsValid() error {
	if strings.TrimSpace(r.City) == "" {
		return fmt.Errorf("city is required")
	}
	if r.Lat == nil || r.Lon == nil {
		return fmt.Errorf("lat and lon are required")
	}
	if !validation.IsLatitude(*r.Lat) {
		return fmt.Errorf("lat must be between -90 and 90")
	}
	if !validation.IsLongitude(*r.Lon) {
		return fmt.Errorf("lon must be between -180 and 180")
	}
	return nil
}
