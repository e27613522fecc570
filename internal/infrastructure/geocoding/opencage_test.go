package geocoding

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/falaklabs/natal-api/internal/core/domain"
)

func newTestClient(srv *httptest.Server) *OpenCageClient {
	return NewOpenCageClient(Config{APIKey: "test-key", BaseURL: srv.URL}, zerolog.Nop())
}

func TestResolve_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/geocode/v1/json" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("q") != "القاهرة" || q.Get("key") != "test-key" || q.Get("limit") != "1" {
			t.Errorf("query = %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"results": [{
				"geometry": {"lat": 30.0444, "lng": 31.2357},
				"annotations": {"timezone": {"name": "Africa/Cairo"}}
			}]
		}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv).Resolve(context.Background(), "القاهرة")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Latitude != 30.0444 || got.Longitude != 31.2357 || got.Timezone != "Africa/Cairo" {
		t.Errorf("got %+v", got)
	}
}

func TestResolve_MissingTimezoneFallsBackToUTC(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results": [{"geometry": {"lat": 1, "lng": 2}}]}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv).Resolve(context.Background(), "somewhere")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Timezone != "UTC" {
		t.Errorf("timezone = %q, want UTC", got.Timezone)
	}
}

func TestResolve_EmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Resolve(context.Background(), "مدينة غير موجودة")
	if !errors.Is(err, domain.ErrLocationNotFound) {
		t.Errorf("err = %v, want ErrLocationNotFound", err)
	}
}

func TestResolve_ProviderFailures(t *testing.T) {
	t.Run("http error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
		}))
		defer srv.Close()

		_, err := newTestClient(srv).Resolve(context.Background(), "Cairo")
		if !errors.Is(err, domain.ErrProviderUnavailable) {
			t.Errorf("err = %v, want ErrProviderUnavailable", err)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"results": [`))
		}))
		defer srv.Close()

		_, err := newTestClient(srv).Resolve(context.Background(), "Cairo")
		if !errors.Is(err, domain.ErrProviderUnavailable) {
			t.Errorf("err = %v, want ErrProviderUnavailable", err)
		}
	})

	t.Run("unreachable host", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close() // connection refused from here on

		_, err := newTestClient(srv).Resolve(context.Background(), "Cairo")
		if !errors.Is(err, domain.ErrProviderUnavailable) {
			t.Errorf("err = %v, want ErrProviderUnavailable", err)
		}
	})
}
