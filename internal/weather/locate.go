package weather

import (
	"context"
	"fmt"
	"net/url"

	"github.com/five82/focushub/internal/remote"
	"github.com/five82/focushub/internal/resource"
)

// DefaultIPLocatorURL answers with the caller's approximate position.
const DefaultIPLocatorURL = "https://ipapi.co/json/"

// Coordinates is a WGS84 position.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Position is a located point plus any place name the locator already knows.
type Position struct {
	Coordinates
	Place string
}

// Locator acquires the user's position. A declined permission is reported as
// resource.ErrPermissionDenied.
type Locator interface {
	Locate(ctx context.Context) (Position, error)
}

// Denied is the Locator used when location sharing is switched off.
type Denied struct{}

// Locate always reports a denied permission.
func (Denied) Locate(context.Context) (Position, error) {
	return Position{}, resource.PermissionDenied("Location permission denied")
}

// Static returns a fixed, configured position.
type Static struct {
	Position Position
}

// Locate returns the configured position.
func (s Static) Locate(context.Context) (Position, error) {
	return s.Position, nil
}

// IPLocator estimates the position from the public IP address.
type IPLocator struct {
	getter   remote.Getter
	endpoint *url.URL
}

// NewIPLocator builds an IPLocator against an ipapi-compatible endpoint.
func NewIPLocator(getter remote.Getter, endpoint *url.URL) *IPLocator {
	return &IPLocator{getter: getter, endpoint: endpoint}
}

// Locate looks up the current public IP's coordinates and city.
func (l *IPLocator) Locate(ctx context.Context) (Position, error) {
	var payload struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		City      string   `json:"city"`
	}
	if err := l.getter.GetJSON(ctx, remote.Request{URL: l.endpoint}, &payload); err != nil {
		return Position{}, fmt.Errorf("locate by ip: %w", err)
	}
	if payload.Latitude == nil || payload.Longitude == nil {
		return Position{}, resource.BadResponse("Could not determine location from IP lookup.")
	}
	return Position{
		Coordinates: Coordinates{Latitude: *payload.Latitude, Longitude: *payload.Longitude},
		Place:       payload.City,
	}, nil
}
