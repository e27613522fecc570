// Package timezone resolves civil local times against the IANA timezone-rule
// database. The database itself is the embedded time/tzdata copy, so the
// service does not depend on the host's zoneinfo files.
package timezone

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/falaklabs/natal-api/internal/core/domain"
	"github.com/falaklabs/natal-api/internal/core/ports"
)

// Disambiguation policies for local times that occur twice during a fall-back
// transition.
const (
	// PolicyEarliest picks the offset that yields the earlier UTC instant,
	// i.e. the offset in effect before the transition.
	PolicyEarliest = "earliest"
	// PolicyLatest picks the offset that yields the later UTC instant.
	PolicyLatest = "latest"
)

// Resolver implements ports.TimezoneResolver on the IANA database.
type Resolver struct {
	policy string
}

// NewResolver builds a Resolver with the given disambiguation policy.
// An empty policy defaults to PolicyEarliest.
func NewResolver(policy string) (*Resolver, error) {
	switch policy {
	case "":
		policy = PolicyEarliest
	case PolicyEarliest, PolicyLatest:
	default:
		return nil, fmt.Errorf("timezone: unknown DST policy %q", policy)
	}
	return &Resolver{policy: policy}, nil
}

// Resolve finds the UTC offset(s) under which the civil instant exists in the
// named zone. A time skipped by a spring-forward transition reports
// Nonexistent; a time repeated by a fall-back transition reports Ambiguous
// with the offset chosen by the policy.
func (r *Resolver) Resolve(name string, d domain.CivilDate, t domain.CivilTime) (ports.ZoneOffset, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return ports.ZoneOffset{}, fmt.Errorf("%w: unknown timezone %q", domain.ErrProviderUnavailable, name)
	}

	// Collect the offsets in effect around the instant. A zone changes offset
	// at most once within this window, so probing both sides of the rough
	// instant finds every offset the wall clock could have meant.
	rough := time.Date(d.Year, time.Month(d.Month), d.Day, t.Hour, t.Minute, 0, 0, time.UTC)
	var candidates []int
	for _, probe := range []time.Time{rough.Add(-26 * time.Hour), rough, rough.Add(26 * time.Hour)} {
		_, off := probe.In(loc).Zone()
		if !containsInt(candidates, off) {
			candidates = append(candidates, off)
		}
	}

	// Keep the offsets that actually reproduce the requested wall clock.
	var matches []int
	for _, off := range candidates {
		local := rough.Add(-time.Duration(off) * time.Second).In(loc)
		if local.Year() == d.Year && int(local.Month()) == d.Month && local.Day() == d.Day &&
			local.Hour() == t.Hour && local.Minute() == t.Minute {
			matches = append(matches, off)
		}
	}

	switch len(matches) {
	case 0:
		return ports.ZoneOffset{Nonexistent: true}, nil
	case 1:
		return ports.ZoneOffset{Offset: matches[0]}, nil
	default:
		// UTC instant = wall clock − offset, so the larger offset is the
		// earlier instant.
		off := matches[0]
		for _, o := range matches[1:] {
			if (r.policy == PolicyEarliest && o > off) || (r.policy == PolicyLatest && o < off) {
				off = o
			}
		}
		return ports.ZoneOffset{Offset: off, Ambiguous: true}, nil
	}
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
