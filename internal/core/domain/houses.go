package domain

import "fmt"

// ValidateCusps checks that a cusp configuration can partition the circle:
// exactly twelve cusps, finite longitudes, no two numerically equal. Equal
// cusps would create a degenerate (empty) house interval, so they are rejected
// here rather than tolerated by the assignment walk.
func ValidateCusps(cusps []HouseCusp) error {
	if len(cusps) != 12 {
		return fmt.Errorf("%w: got %d cusps, want 12", ErrHouseCalculation, len(cusps))
	}
	for i := range cusps {
		for j := i + 1; j < len(cusps); j++ {
			if cusps[i].Longitude == cusps[j].Longitude {
				return fmt.Errorf("%w: houses %d and %d share cusp %.6f°",
					ErrHouseCalculation, cusps[i].House, cusps[j].House, cusps[i].Longitude)
			}
		}
	}
	return nil
}

// HouseOf returns the house whose circular interval [cusp[i], cusp[i+1])
// contains the longitude. Containment is measured by walking forward along the
// circle from the interval start, so intervals that wrap through 360°→0° work
// the same as plain ones.
//
// For any twelve distinct cusps the intervals partition the circle, so exactly
// one house matches; cusp configurations are validated with ValidateCusps
// before this is called.
func HouseOf(cusps []HouseCusp, lon float64) int {
	for i := range cusps {
		start := cusps[i].Longitude
		end := cusps[(i+1)%len(cusps)].Longitude
		span := NormalizeDegrees(end - start)
		offset := NormalizeDegrees(lon - start)
		if offset < span {
			return cusps[i].House
		}
	}
	// Unreachable for distinct cusps; kept so a corrupted configuration is
	// loud instead of silently misassigned.
	return cusps[len(cusps)-1].House
}

// AssignHouses places every successfully resolved body in its house. Bodies
// carrying a soft calculation error are skipped.
func AssignHouses(cusps []HouseCusp, positions []BodyPosition) []HouseAssignment {
	assignments := make([]HouseAssignment, 0, len(positions))
	for _, p := range positions {
		if p.Err != "" {
			continue
		}
		assignments = append(assignments, HouseAssignment{
			Body:      p.Body,
			House:     HouseOf(cusps, p.Longitude),
			Longitude: p.Longitude,
			Sign:      p.Sign,
		})
	}
	return assignments
}
