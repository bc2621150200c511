package kernel

import (
	"fmt"

	"pizzahome/internal/pkg/errs"
	"pizzahome/internal/pkg/guard"
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"GeoPoint must be created via NewGeoPoint constructor")

// GeoPoint is an immutable value object holding validated latitude/longitude
// coordinates. It backs optional order coordinates and the shared-location
// messages customers can send instead of a text address.
//
// The zero value is invalid and fails validation; use NewGeoPoint.
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint, validating that latitude is within [-90, 90]
// and longitude within [-180, 180].
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	if lat < -90 || lat > 90 {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("lat",
			fmt.Errorf("%v is outside [-90, 90]", lat))
	}
	if lng < -180 || lng > 180 {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("lng",
			fmt.Errorf("%v is outside [-180, 180]", lng))
	}

	return GeoPoint{
		lat:   lat,
		lng:   lng,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Lat returns the latitude.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// IsEqual compares two points by coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lng == other.lng
}

// String returns a human-readable representation, e.g. "GeoPoint(33.6, 73.0)".
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%v, %v)", p.lat, p.lng)
}

// Validate ensures the GeoPoint was created through NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}
