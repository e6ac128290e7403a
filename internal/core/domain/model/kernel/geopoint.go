package kernel

import (
	"errors"
	"fmt"
	"math"

	"ewaste/internal/pkg/errs"
)

const (
	// LongitudeMin is the minimum valid longitude in degrees.
	LongitudeMin float64 = -180
	// LongitudeMax is the maximum valid longitude in degrees.
	LongitudeMax float64 = 180
	// LatitudeMin is the minimum valid latitude in degrees.
	LatitudeMin float64 = -90
	// LatitudeMax is the maximum valid latitude in degrees.
	LatitudeMax float64 = 90
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly initialized GeoPoint.
// GeoPoints must be created via the NewGeoPoint constructor to ensure validity.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic position as a validated (longitude, latitude)
// pair in WGS84 degrees. GeoPoint is an immutable value object; the zero value is
// invalid and fails validation - use the constructor to create instances.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(13.4050, 52.5200)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Point: %s", point) // Output: GeoPoint(13.405000,52.520000)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lon   float64
	lat   float64
	guard ConstructorGuard
}

// NewGeoPoint creates a new GeoPoint with the specified coordinates.
// Longitude must be within [LongitudeMin..LongitudeMax] and latitude within
// [LatitudeMin..LatitudeMax]; NaN and infinities are rejected. Returns an
// error if either coordinate is outside its valid bounds.
func NewGeoPoint(lon float64, lat float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: NewConstructorGuard(),
	}

	if err := errors.Join(point.setLon(lon), point.setLat(lat)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks if the GeoPoint was properly constructed using the constructor.
// The zero value of GeoPoint is invalid and will fail this validation.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lon returns the longitude in degrees.
func (p GeoPoint) Lon() float64 {
	return p.lon
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// String returns a human-readable representation in the format "GeoPoint(lon,lat)".
// This method implements the fmt.Stringer interface.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.lon, p.lat)
}

// IsEqual compares two geo points for equality.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lon == other.lon && p.lat == other.lat, nil
}

// setLon sets the longitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (p *GeoPoint) setLon(lon float64) error {
	if math.IsNaN(lon) || math.IsInf(lon, 0) || lon < LongitudeMin || lon > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("lon", lon, LongitudeMin, LongitudeMax)
	}

	p.lon = lon
	return nil
}

// setLat sets the latitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (p *GeoPoint) setLat(lat float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("lat", lat, LatitudeMin, LatitudeMax)
	}

	p.lat = lat
	return nil
}
