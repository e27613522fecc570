package ports

import (
	"context"

	"github.com/falaklabs/natal-api/internal/core/domain"
)

// GeocodingProvider resolves a free-text location (Arabic or Latin script)
// into coordinates and an IANA timezone name. Implementations must default
// the timezone to "UTC" when the upstream response omits one, and must
// translate upstream failures to domain.ErrLocationNotFound or
// domain.ErrProviderUnavailable.
type GeocodingProvider interface {
	Resolve(ctx context.Context, location string) (*domain.ResolvedLocation, error)
}

// RawHouses is the unprocessed house output of the ephemeris: twelve cusp
// longitudes in house order plus the ascendant, none of them normalized yet.
type RawHouses struct {
	Cusps     [12]float64
	Ascendant float64
}

// EphemerisProvider computes raw ecliptic positions. It is consumed as an
// oracle: callers validate shape and normalize angles but never reimplement
// the underlying astronomy.
type EphemerisProvider interface {
	// BodyLongitude returns the ecliptic longitude of one body at the given
	// Julian Day (UT). A calculation failure for a single body is an ordinary
	// error here; the caller decides that it is soft.
	BodyLongitude(ctx context.Context, julianDay float64, body domain.CelestialBody) (float64, error)

	// Houses returns the twelve cusps and ascendant for the given instant and
	// geographic position under the requested house system code.
	Houses(ctx context.Context, julianDay float64, lat, lng float64, system string) (*RawHouses, error)
}

// ZoneOffset is the timezone-rule lookup result for one civil instant.
type ZoneOffset struct {
	// Offset is the UTC offset in effect (per the disambiguation policy when
	// Ambiguous is set).
	Offset int // seconds east of UTC
	// Ambiguous marks a civil time that occurs twice (fall-back overlap).
	Ambiguous bool
	// Nonexistent marks a civil time skipped by a spring-forward transition.
	// Offset is meaningless when set.
	Nonexistent bool
}

// TimezoneResolver consults the timezone-rule database for the UTC offset of
// a civil instant in a named zone.
type TimezoneResolver interface {
	Resolve(name string, date domain.CivilDate, t domain.CivilTime) (ZoneOffset, error)
}
