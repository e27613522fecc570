package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/falaklabs/natal-api/internal/api/metrics"
	"github.com/falaklabs/natal-api/internal/core/domain"
	"github.com/falaklabs/natal-api/internal/core/ports"
)

// ChartService orchestrates the chart pipeline: normalize the birth instant,
// geocode the location, fan out to the ephemeris, then assign houses and
// detect aspects. It is the only component that knows all the others.
type ChartService struct {
	geo         ports.GeocodingProvider
	ephemeris   ports.EphemerisProvider
	tz          ports.TimezoneResolver
	cache       ports.ChartCache // optional; nil disables caching
	houseSystem string
	orb         float64
	logger      zerolog.Logger
}

// NewChartService wires the chart pipeline. The aspect orb is validated here
// so a misconfigured deployment fails at startup instead of classifying one
// separation as two aspects.
func NewChartService(
	geo ports.GeocodingProvider,
	ephemeris ports.EphemerisProvider,
	tz ports.TimezoneResolver,
	cache ports.ChartCache,
	houseSystem string,
	orb float64,
	logger zerolog.Logger,
) (*ChartService, error) {
	if err := domain.ValidateOrb(orb); err != nil {
		return nil, err
	}
	if houseSystem == "" {
		houseSystem = "P"
	}
	return &ChartService{
		geo:         geo,
		ephemeris:   ephemeris,
		tz:          tz,
		cache:       cache,
		houseSystem: houseSystem,
		orb:         orb,
		logger:      logger,
	}, nil
}

// ComputeChart computes a full natal chart for one birth moment. Failures in
// parsing, geocoding, time resolution, and house calculation abort the chart;
// per-body ephemeris failures are recorded on that body's slot and the rest of
// the chart is still delivered.
func (s *ChartService) ComputeChart(ctx context.Context, input ports.ComputeChartInput) (*domain.Chart, error) {
	started := time.Now()

	chart, err := s.compute(ctx, input)
	if err != nil {
		metrics.ChartErrorsTotal.WithLabelValues(strings.ToLower(domain.ErrorKind(err))).Inc()
		return nil, err
	}

	metrics.ChartComputationDuration.Observe(time.Since(started).Seconds())
	return chart, nil
}

func (s *ChartService) compute(ctx context.Context, input ports.ComputeChartInput) (*domain.Chart, error) {
	date, err := domain.ParseCivilDate(input.BirthDate)
	if err != nil {
		return nil, err
	}
	civil, err := domain.ParseCivilTime(input.BirthTime)
	if err != nil {
		return nil, err
	}

	place, err := s.geo.Resolve(ctx, input.Location)
	if err != nil {
		return nil, err
	}

	at, err := s.normalizeTime(date, civil, place.Timezone)
	if err != nil {
		return nil, err
	}

	key := cacheKey(date, civil, place, s.houseSystem)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			metrics.ChartsComputedTotal.WithLabelValues("cached").Inc()
			cached.Subject = input.Name
			return cached, nil
		}
	}

	positions, raw, err := s.fetchPositions(ctx, at, place)
	if err != nil {
		return nil, err
	}

	cusps, asc, err := resolveHouses(raw)
	if err != nil {
		return nil, err
	}

	aspects := domain.DetectAspects(positions, s.orb)
	for _, a := range aspects {
		metrics.AspectsDetectedTotal.WithLabelValues(string(a.Kind)).Inc()
	}

	chart := &domain.Chart{
		Subject: input.Name,
		Moment: domain.BirthMoment{
			Date:     date,
			Time:     civil,
			Location: input.Location,
		},
		Place:       *place,
		Time:        at,
		Positions:   positions,
		Cusps:       cusps,
		Ascendant:   asc,
		Assignments: domain.AssignHouses(cusps, positions),
		Aspects:     aspects,
	}

	outcome := "ok"
	for _, p := range positions {
		if p.Err != "" {
			outcome = "partial"
			break
		}
	}
	metrics.ChartsComputedTotal.WithLabelValues(outcome).Inc()

	if s.cache != nil {
		s.cache.Set(ctx, key, chart)
	}

	s.logger.Info().
		Str("subject", input.Name).
		Float64("julian_day", chart.Time.JulianDay).
		Int("aspects", len(aspects)).
		Str("outcome", outcome).
		Msg("chart computed")

	return chart, nil
}

// normalizeTime resolves the civil birth instant to a single UTC instant under
// the zone's rules. Nonexistent local times are rejected; ambiguous ones are
// settled by the resolver's configured policy and logged.
func (s *ChartService) normalizeTime(date domain.CivilDate, civil domain.CivilTime, zone string) (domain.AstronomicalTime, error) {
	z, err := s.tz.Resolve(zone, date, civil)
	if err != nil {
		return domain.AstronomicalTime{}, err
	}
	if z.Nonexistent {
		return domain.AstronomicalTime{}, fmt.Errorf("%w: %s %s was skipped in %s",
			domain.ErrInvalidLocalTime, date, civil, zone)
	}
	if z.Ambiguous {
		s.logger.Info().
			Str("zone", zone).
			Str("local", date.String()+" "+civil.String()).
			Int("offset_seconds", z.Offset).
			Msg("ambiguous local time settled by policy")
	}
	return domain.NewAstronomicalTime(date, civil, time.Duration(z.Offset)*time.Second), nil
}

// fetchPositions issues the ten per-body calls and the houses call
// concurrently. Each goroutine writes to its own fixed slot, so the output
// order is the body enumeration order regardless of completion order.
func (s *ChartService) fetchPositions(ctx context.Context, at domain.AstronomicalTime, place *domain.ResolvedLocation) ([]domain.BodyPosition, *ports.RawHouses, error) {
	positions := make([]domain.BodyPosition, len(domain.Bodies))

	var (
		wg        sync.WaitGroup
		raw       *ports.RawHouses
		housesErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		raw, housesErr = s.ephemeris.Houses(ctx, at.JulianDay, place.Latitude, place.Longitude, s.houseSystem)
	}()

	for i, body := range domain.Bodies {
		wg.Add(1)
		go func(i int, body domain.CelestialBody) {
			defer wg.Done()
			lon, err := s.ephemeris.BodyLongitude(ctx, at.JulianDay, body)
			if err != nil {
				// Soft failure: one bad body must not invalidate the rest.
				metrics.BodyCalculationErrorsTotal.WithLabelValues(body.Name()).Inc()
				s.logger.Warn().Err(err).Str("body", body.Name()).Msg("body position failed")
				positions[i] = domain.BodyPosition{Body: body, Err: domain.ErrorKind(domain.ErrBodyCalculation)}
				return
			}
			lon = domain.NormalizeDegrees(lon)
			sign, deg := domain.SignFromLongitude(lon)
			positions[i] = domain.BodyPosition{Body: body, Longitude: lon, Sign: sign, SignDegree: deg}
		}(i, body)
	}

	wg.Wait()

	if housesErr != nil {
		return nil, nil, housesErr
	}
	return positions, raw, nil
}

// resolveHouses normalizes the raw ephemeris output into annotated cusps and
// the ascendant, rejecting configurations that cannot partition the circle.
func resolveHouses(raw *ports.RawHouses) ([]domain.HouseCusp, domain.Ascendant, error) {
	cusps := make([]domain.HouseCusp, len(raw.Cusps))
	for i, lon := range raw.Cusps {
		lon = domain.NormalizeDegrees(lon)
		sign, deg := domain.SignFromLongitude(lon)
		cusps[i] = domain.HouseCusp{House: i + 1, Longitude: lon, Sign: sign, SignDegree: deg}
	}
	if err := domain.ValidateCusps(cusps); err != nil {
		return nil, domain.Ascendant{}, err
	}

	ascLon := domain.NormalizeDegrees(raw.Ascendant)
	sign, deg := domain.SignFromLongitude(ascLon)
	return cusps, domain.Ascendant{Longitude: ascLon, Sign: sign, SignDegree: deg}, nil
}

// cacheKey identifies a chart by its full normalized input. The subject name
// is presentation-only and deliberately excluded.
func cacheKey(date domain.CivilDate, civil domain.CivilTime, place *domain.ResolvedLocation, system string) string {
	return fmt.Sprintf("chart:%sT%s:%s:%.6f:%.6f:%s",
		date, civil, place.Timezone, place.Latitude, place.Longitude, system)
}
