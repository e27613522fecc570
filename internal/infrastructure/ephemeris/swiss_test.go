package ephemeris

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/falaklabs/natal-api/internal/core/domain"
)

func TestBodyLongitude_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calc" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if want := strconv.FormatFloat(2448058.0208333333, 'f', -1, 64); q.Get("jd") != want {
			t.Errorf("jd = %q, want %q", q.Get("jd"), want)
		}
		if q.Get("body") != "3" { // Venus
			t.Errorf("body = %q", q.Get("body"))
		}
		_, _ = w.Write([]byte(`{"status": 0, "longitude": 123.456}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	got, err := c.BodyLongitude(context.Background(), 2448058.0208333333, domain.Venus)
	if err != nil {
		t.Fatalf("BodyLongitude: %v", err)
	}
	if got != 123.456 {
		t.Errorf("longitude = %v", got)
	}
}

func TestBodyLongitude_Failures(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		wantErr error
	}{
		{"negative status", `{"status": -1, "longitude": 0, "error": "no ephemeris file"}`, domain.ErrBodyCalculation},
		{"missing status", `{"longitude": 10.0}`, domain.ErrBodyCalculation},
		{"missing longitude", `{"status": 0}`, domain.ErrBodyCalculation},
		{"longitude not a number", `{"status": 0, "longitude": "NaN"}`, domain.ErrProviderUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tc.payload))
			}))
			defer srv.Close()

			c := NewClient(Config{BaseURL: srv.URL})
			_, err := c.BodyLongitude(context.Background(), 2451545.0, domain.Sun)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestBodyLongitude_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	_, err := c.BodyLongitude(context.Background(), 2451545.0, domain.Sun)
	if !errors.Is(err, domain.ErrProviderUnavailable) {
		t.Errorf("err = %v, want ErrProviderUnavailable", err)
	}
}

func TestHouses_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/houses" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("system") != "P" {
			t.Errorf("system = %q", q.Get("system"))
		}
		_, _ = w.Write([]byte(`{
			"cusps": [310, 340, 10, 40, 70, 100, 130, 160, 190, 220, 250, 280],
			"ascendant": 310.5
		}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	raw, err := c.Houses(context.Background(), 2451545.0, 30.0444, 31.2357, "P")
	if err != nil {
		t.Fatalf("Houses: %v", err)
	}
	if raw.Ascendant != 310.5 {
		t.Errorf("ascendant = %v", raw.Ascendant)
	}
	if raw.Cusps[0] != 310 || raw.Cusps[11] != 280 {
		t.Errorf("cusps = %v", raw.Cusps)
	}
}

func TestHouses_Failures(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"declared error", `{"cusps": [], "error": "polar latitude"}`},
		{"short cusp list", `{"cusps": [0, 30, 60], "ascendant": 0}`},
		{"missing ascendant", fmt.Sprintf(`{"cusps": %s}`, twelveCusps())},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tc.payload))
			}))
			defer srv.Close()

			c := NewClient(Config{BaseURL: srv.URL})
			_, err := c.Houses(context.Background(), 2451545.0, 66.5, 25.7, "P")
			if !errors.Is(err, domain.ErrHouseCalculation) {
				t.Errorf("err = %v, want ErrHouseCalculation", err)
			}
		})
	}
}

func twelveCusps() string {
	return `[0, 30, 60, 90, 120, 150, 180, 210, 240, 270, 300, 330]`
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("path = %q", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	if err := c.Ping(context.Background()); err != nil {
		t.Errorf("Ping: %v", err)
	}

	srv.Close()
	if err := c.Ping(context.Background()); err == nil {
		t.Error("Ping against a dead server must fail")
	}
}
