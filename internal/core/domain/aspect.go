package domain

import (
	"fmt"
	"math"
)

// DefaultOrb is the allowed deviation from an exact reference angle, degrees.
const DefaultOrb = 5.0

// aspectTable maps reference angles to their classification, in ascending
// angle order. Reference angles are spaced at least 30° apart, so with any
// valid orb a separation matches at most one row.
var aspectTable = []struct {
	angle float64
	kind  AspectKind
}{
	{0, Conjunction},
	{60, Sextile},
	{90, Square},
	{120, Trine},
	{180, Opposition},
}

// minAspectSpacing is the smallest gap between adjacent reference angles.
const minAspectSpacing = 30.0

// ValidateOrb rejects orbs wide enough that one separation could match two
// reference angles. The orb must stay below half the minimum spacing.
func ValidateOrb(orb float64) error {
	if orb <= 0 || orb >= minAspectSpacing/2 {
		return fmt.Errorf("aspect orb %.2f° out of range (0, %.0f°)", orb, minAspectSpacing/2)
	}
	return nil
}

// Separation returns the true angular separation of two longitudes, in
// [0, 180].
func Separation(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// ClassifyAspect matches a separation against the aspect table. The second
// return is false when the separation falls outside every reference angle's
// orb, which is a normal outcome, not an error.
func ClassifyAspect(separation, orb float64) (AspectKind, bool) {
	for _, ref := range aspectTable {
		if math.Abs(separation-ref.angle) <= orb {
			return ref.kind, true
		}
	}
	return "", false
}

// DetectAspects examines every unordered pair of successfully resolved bodies
// exactly once, in enumeration order, and records the pairs whose separation
// classifies within orb. The first body of each aspect always precedes the
// second in enumeration order, so (A,B) and (B,A) can never both appear.
func DetectAspects(positions []BodyPosition, orb float64) []Aspect {
	var aspects []Aspect
	for i := range positions {
		if positions[i].Err != "" {
			continue
		}
		for j := i + 1; j < len(positions); j++ {
			if positions[j].Err != "" {
				continue
			}
			sep := Separation(positions[i].Longitude, positions[j].Longitude)
			kind, ok := ClassifyAspect(sep, orb)
			if !ok {
				continue
			}
			aspects = append(aspects, Aspect{
				First:      positions[i].Body,
				Second:     positions[j].Body,
				Separation: sep,
				Kind:       kind,
			})
		}
	}
	return aspects
}
