// Package geo implements an optional HTTP geolocation helper (§1's scope
// list carries it as an external collaborator): a narrow Resolver interface
// plus a net/http-backed default implementation, neither of which the
// Dataset/serializer core ever calls directly.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang/glog"

	"github.com/csdm-go/csdm/unit"
)

// Coordinate is the narrow result a Resolver produces: latitude, longitude,
// and an optional altitude, ready to feed into dataset.GeographicCoordinate.
type Coordinate struct {
	Latitude  unit.Scalar
	Longitude unit.Scalar
	Altitude  *unit.Scalar
}

// Resolver looks up a geographic coordinate for a query string (an IP
// address or a free-form place name, depending on the backing service).
type Resolver interface {
	Resolve(ctx context.Context, query string) (Coordinate, error)
}

// HTTPResolver is a Resolver backed by a JSON HTTP geolocation API
// returning {"lat": float, "lon": float, "alt": float (optional)}.
type HTTPResolver struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPResolver creates an HTTPResolver against baseURL, using
// http.DefaultClient if client is nil.
func NewHTTPResolver(baseURL string, client *http.Client) *HTTPResolver {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPResolver{BaseURL: baseURL, Client: client}
}

type geoResponse struct {
	Lat float64  `json:"lat"`
	Lon float64  `json:"lon"`
	Alt *float64 `json:"alt,omitempty"`
}

func (r *HTTPResolver) Resolve(ctx context.Context, query string) (Coordinate, error) {
	url := fmt.Sprintf("%s?q=%s", r.BaseURL, query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Coordinate{}, err
	}
	glog.V(1).Infof("geo: resolving %q against %s", query, r.BaseURL)

	resp, err := r.Client.Do(req)
	if err != nil {
		return Coordinate{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Coordinate{}, fmt.Errorf("geo: resolver returned status %d", resp.StatusCode)
	}

	var body geoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Coordinate{}, fmt.Errorf("geo: malformed response: %w", err)
	}

	degree, _ := unit.ParseUnit("")
	coord := Coordinate{
		Latitude:  unit.NewScalar(body.Lat, degree),
		Longitude: unit.NewScalar(body.Lon, degree),
	}
	if body.Alt != nil {
		meter, _ := unit.ParseUnit("m")
		alt := unit.NewScalar(*body.Alt, meter)
		coord.Altitude = &alt
	}
	return coord, nil
}

// WithTimeout wraps a Resolver so every Resolve call is bounded by d.
func WithTimeout(r Resolver, d time.Duration) Resolver {
	return timeoutResolver{inner: r, timeout: d}
}

type timeoutResolver struct {
	inner   Resolver
	timeout time.Duration
}

func (t timeoutResolver) Resolve(ctx context.Context, query string) (Coordinate, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Resolve(ctx, query)
}
