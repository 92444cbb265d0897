package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHTTPResolverParsesCoordinate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"lat": 37.7749, "lon": -122.4194, "alt": 16.0}`))
	}))
	defer srv.Close()

	r := NewHTTPResolver(srv.URL, nil)
	coord, err := r.Resolve(context.Background(), "san-francisco")
	require.NoError(t, err)
	require.InDelta(t, 37.7749, coord.Latitude.Value, 1e-9)
	require.InDelta(t, -122.4194, coord.Longitude.Value, 1e-9)
	require.NotNil(t, coord.Altitude)
	require.InDelta(t, 16.0, coord.Altitude.Value, 1e-9)
}

func TestHTTPResolverOmitsAltitudeWhenAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"lat": 1.0, "lon": 2.0}`))
	}))
	defer srv.Close()

	r := NewHTTPResolver(srv.URL, nil)
	coord, err := r.Resolve(context.Background(), "q")
	require.NoError(t, err)
	require.Nil(t, coord.Altitude)
}

func TestHTTPResolverNonOKStatusErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := NewHTTPResolver(srv.URL, nil)
	_, err := r.Resolve(context.Background(), "q")
	require.Error(t, err)
}

func TestHTTPResolverMalformedBodyErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	r := NewHTTPResolver(srv.URL, nil)
	_, err := r.Resolve(context.Background(), "q")
	require.Error(t, err)
}

func TestWithTimeoutPropagatesDeadlineExceeded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
		w.Write([]byte(`{"lat": 1.0, "lon": 1.0}`))
	}))
	defer srv.Close()

	r := WithTimeout(NewHTTPResolver(srv.URL, nil), 1*time.Millisecond)
	_, err := r.Resolve(context.Background(), "q")
	require.Error(t, err)
}
