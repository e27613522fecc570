package domain

import (
	"fmt"
	"math"
	"time"
)

// Supported civil year range. Births outside it are rejected rather than fed
// to the ephemeris, whose data files do not cover the full calendar.
const (
	MinYear = 1800
	MaxYear = 2400
)

// CivilDate is a calendar date as written on a birth certificate.
type CivilDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// CivilTime is a wall-clock time of day.
type CivilTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

func (d CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (t CivilTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ParseCivilDate parses a YYYY-MM-DD string. Malformed or impossible dates
// yield ErrInvalidDateTimeFormat; well-formed dates outside [MinYear, MaxYear]
// yield ErrDateOutOfRange.
func ParseCivilDate(s string) (CivilDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return CivilDate{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDateTimeFormat, s)
	}
	d := CivilDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
	if d.Year < MinYear || d.Year > MaxYear {
		return CivilDate{}, fmt.Errorf("%w: year %d not in [%d, %d]", ErrDateOutOfRange, d.Year, MinYear, MaxYear)
	}
	return d, nil
}

// ParseCivilTime parses an HH:MM string in 24-hour clock.
func ParseCivilTime(s string) (CivilTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return CivilTime{}, fmt.Errorf("%w: %q is not an HH:MM time", ErrInvalidDateTimeFormat, s)
	}
	return CivilTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// AstronomicalTime is the disambiguated birth instant on the ephemeris time
// axis. It is only ever constructed from a local time that resolved to exactly
// one UTC instant; ambiguous and nonexistent local times are settled, or
// rejected, before this point.
type AstronomicalTime struct {
	// JulianDay is the fractional Julian Day in Universal Time.
	JulianDay float64 `json:"julian_day"`
	// UTC is the offset-adjusted civil instant the Julian Day was derived
	// from, retained for diagnostics.
	UTC time.Time `json:"utc"`
}

// NewAstronomicalTime applies a known UTC offset to a civil instant and
// converts the result to a Julian Day.
func NewAstronomicalTime(d CivilDate, t CivilTime, offset time.Duration) AstronomicalTime {
	utc := time.Date(d.Year, time.Month(d.Month), d.Day, t.Hour, t.Minute, 0, 0, time.UTC).Add(-offset)
	return AstronomicalTime{JulianDay: JulianDay(utc), UTC: utc}
}

// JulianDay converts a UTC instant to a fractional Julian Day using the
// standard Gregorian-calendar formula. Sub-minute precision is preserved
// through the seconds term.
func JulianDay(t time.Time) float64 {
	t = t.UTC()
	y, m := t.Year(), int(t.Month())
	if m <= 2 {
		y--
		m += 12
	}
	a := y / 100
	b := 2 - a + a/4

	day := float64(t.Day()) +
		float64(t.Hour())/24 +
		float64(t.Minute())/1440 +
		float64(t.Second())/86400

	return math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		day + float64(b) - 1524.5
}
