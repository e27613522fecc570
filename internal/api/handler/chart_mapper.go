package handler

import (
	"time"

	"github.com/falaklabs/natal-api/internal/core/domain"
)

// --- Chart → Response ---

func toChartResponse(chart *domain.Chart) computeChartResponse {
	positions := make([]bodyPositionResponse, 0, len(chart.Positions))
	for _, p := range chart.Positions {
		positions = append(positions, toPositionResponse(p))
	}

	cusps := make([]houseCuspResponse, 0, len(chart.Cusps))
	for _, cusp := range chart.Cusps {
		cusps = append(cusps, houseCuspResponse{
			House:      cusp.House,
			Longitude:  cusp.Longitude,
			Sign:       cusp.Sign.Name(),
			SignArabic: cusp.Sign.ArabicName(),
			SignDegree: cusp.SignDegree,
		})
	}

	assignments := make([]houseAssignmentResponse, 0, len(chart.Assignments))
	for _, a := range chart.Assignments {
		assignments = append(assignments, houseAssignmentResponse{
			Body:      a.Body.Name(),
			House:     a.House,
			Longitude: a.Longitude,
			Sign:      a.Sign.Name(),
		})
	}

	aspects := make([]aspectResponse, 0, len(chart.Aspects))
	for _, a := range chart.Aspects {
		aspects = append(aspects, aspectResponse{
			First:      a.First.Name(),
			Second:     a.Second.Name(),
			Separation: a.Separation,
			Kind:       string(a.Kind),
		})
	}

	return computeChartResponse{
		Name:      chart.Subject,
		BirthDate: chart.Moment.Date.String(),
		BirthTime: chart.Moment.Time.String(),
		Location:  chart.Moment.Location,
		Place: locationResponse{
			Latitude:  chart.Place.Latitude,
			Longitude: chart.Place.Longitude,
			Timezone:  chart.Place.Timezone,
		},
		Time: timeResponse{
			JulianDay: chart.Time.JulianDay,
			UTC:       chart.Time.UTC.Format(time.RFC3339),
		},
		Positions: positions,
		Cusps:     cusps,
		Ascendant: ascendantResponse{
			Longitude:  chart.Ascendant.Longitude,
			Sign:       chart.Ascendant.Sign.Name(),
			SignArabic: chart.Ascendant.Sign.ArabicName(),
			SignDegree: chart.Ascendant.SignDegree,
		},
		Assignments: assignments,
		Aspects:     aspects,
	}
}

func toPositionResponse(p domain.BodyPosition) bodyPositionResponse {
	resp := bodyPositionResponse{
		Body:       p.Body.Name(),
		BodyArabic: p.Body.ArabicName(),
	}
	if p.Err != "" {
		resp.Error = p.Err
		return resp
	}
	lon, deg := p.Longitude, p.SignDegree
	resp.Longitude = &lon
	resp.Sign = p.Sign.Name()
	resp.SignArabic = p.Sign.ArabicName()
	resp.SignDegree = &deg
	return resp
}
