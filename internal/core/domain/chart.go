package domain

import "errors"

var ErrInvalidDateTimeFormat = errors.New("invalid date or time format")
var ErrDateOutOfRange = errors.New("birth year outside supported range")
var ErrInvalidLocalTime = errors.New("local time does not exist in timezone")
var ErrLocationNotFound = errors.New("location not found")
var ErrProviderUnavailable = errors.New("provider unavailable")
var ErrHouseCalculation = errors.New("house calculation failed")
var ErrBodyCalculation = errors.New("body position calculation failed")

// BirthMoment is the raw chart input: a civil birth instant plus the free-text
// location string the subject supplied.
type BirthMoment struct {
	Date     CivilDate `json:"date"`
	Time     CivilTime `json:"time"`
	Location string    `json:"location"`
}

// ResolvedLocation is the geocoded birth place.
type ResolvedLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	// Timezone is an IANA zone name; "UTC" when the geocoder omits one.
	Timezone string `json:"timezone"`
}

// BodyPosition is a body's resolved place on the ecliptic.
// Invariant: Sign == floor(Longitude/30) and SignDegree == Longitude mod 30.
//
// Err carries the per-body soft failure: when non-empty, Longitude and the
// sign fields are meaningless and the body is excluded from house assignment
// and aspect detection. One failed body never invalidates the other nine.
type BodyPosition struct {
	Body       CelestialBody `json:"body"`
	Longitude  float64       `json:"longitude"`
	Sign       Sign          `json:"sign"`
	SignDegree float64       `json:"sign_degree"`
	Err        string        `json:"error,omitempty"`
}

// HouseCusp is one of the twelve house boundaries. Cusps are ordered by house
// number; their longitudes wrap through 0° between houses 12 and 1, which is
// expected and not an error.
type HouseCusp struct {
	House      int     `json:"house"`
	Longitude  float64 `json:"longitude"`
	Sign       Sign    `json:"sign"`
	SignDegree float64 `json:"sign_degree"`
}

// Ascendant is the rising degree. It coincides with the house-1 cusp under
// quadrant systems, but callers must not rely on that for every house system,
// so it is always carried separately.
type Ascendant struct {
	Longitude  float64 `json:"longitude"`
	Sign       Sign    `json:"sign"`
	SignDegree float64 `json:"sign_degree"`
}

// HouseAssignment places one body in the single house interval containing it.
// Longitude and Sign are copied from the position for presentation.
type HouseAssignment struct {
	Body      CelestialBody `json:"body"`
	House     int           `json:"house"`
	Longitude float64       `json:"longitude"`
	Sign      Sign          `json:"sign"`
}

// AspectKind names an angular relationship between two bodies.
type AspectKind string

const (
	Conjunction AspectKind = "conjunction"
	Sextile     AspectKind = "sextile"
	Square      AspectKind = "square"
	Trine       AspectKind = "trine"
	Opposition  AspectKind = "opposition"
)

// Aspect records a classified angular relationship. First always precedes
// Second in body enumeration order, so a pair appears at most once.
type Aspect struct {
	First      CelestialBody `json:"first"`
	Second     CelestialBody `json:"second"`
	Separation float64       `json:"separation"`
	Kind       AspectKind    `json:"kind"`
}

// Chart is the aggregate root: everything computed for one birth moment.
// It is assembled once and never mutated; charts live for the duration of a
// request/response cycle only (plus an optional cache entry). Identical
// inputs with identical collaborator responses always assemble the identical
// chart, so there is deliberately no computed-at stamp in here.
type Chart struct {
	Subject     string            `json:"subject"`
	Moment      BirthMoment       `json:"moment"`
	Place       ResolvedLocation  `json:"place"`
	Time        AstronomicalTime  `json:"time"`
	Positions   []BodyPosition    `json:"positions"`
	Cusps       []HouseCusp       `json:"cusps"`
	Ascendant   Ascendant         `json:"ascendant"`
	Assignments []HouseAssignment `json:"assignments"`
	Aspects     []Aspect          `json:"aspects"`
}
