package weather

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/five82/focushub/internal/remote"
)

// DefaultGeocoderURL is the Nominatim reverse-geocoding endpoint.
const DefaultGeocoderURL = "https://nominatim.openstreetmap.org/reverse"

// UnknownPlace is shown when no geocoder can name the position.
const UnknownPlace = "Unknown"

// Geocoder names the place at a position. An empty name with a nil error
// means "no answer", letting the next geocoder in a Chain try.
type Geocoder interface {
	PlaceName(ctx context.Context, pos Position) (string, error)
}

// Hint returns the place name the locator already attached to the position.
type Hint struct{}

// PlaceName returns pos.Place.
func (Hint) PlaceName(_ context.Context, pos Position) (string, error) {
	return strings.TrimSpace(pos.Place), nil
}

// Fixed always answers with the same configured place name.
type Fixed string

// PlaceName returns the configured name.
func (f Fixed) PlaceName(context.Context, Position) (string, error) {
	return strings.TrimSpace(string(f)), nil
}

// Nominatim reverse-geocodes through an OpenStreetMap Nominatim server.
type Nominatim struct {
	getter   remote.Getter
	endpoint *url.URL
}

// NewNominatim builds a Nominatim geocoder.
func NewNominatim(getter remote.Getter, endpoint *url.URL) *Nominatim {
	return &Nominatim{getter: getter, endpoint: endpoint}
}

// PlaceName returns the most specific of city, town, village or country.
func (n *Nominatim) PlaceName(ctx context.Context, pos Position) (string, error) {
	var payload struct {
		Address *struct {
			City    string `json:"city"`
			Town    string `json:"town"`
			Village string `json:"village"`
			Country string `json:"country"`
		} `json:"address"`
	}
	req := remote.Request{
		URL: n.endpoint,
		Query: url.Values{
			"format": {"jsonv2"},
			"lat":    {formatCoord(pos.Latitude)},
			"lon":    {formatCoord(pos.Longitude)},
			"zoom":   {"10"},
		},
	}
	if err := n.getter.GetJSON(ctx, req, &payload); err != nil {
		return "", err
	}
	if payload.Address == nil {
		return "", nil
	}
	for _, name := range []string{payload.Address.City, payload.Address.Town, payload.Address.Village, payload.Address.Country} {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			return trimmed, nil
		}
	}
	return "", nil
}

// Chain tries each geocoder in order and settles on UnknownPlace. It never
// fails.
type Chain struct {
	geocoders []Geocoder
	logger    *slog.Logger
}

// NewChain builds a Chain over geocoders.
func NewChain(logger *slog.Logger, geocoders ...Geocoder) *Chain {
	if logger == nil {
		logger = slog.Default()
	}
	return &Chain{geocoders: geocoders, logger: logger}
}

// PlaceName returns the first non-empty answer.
func (c *Chain) PlaceName(ctx context.Context, pos Position) (string, error) {
	for i, g := range c.geocoders {
		name, err := g.PlaceName(ctx, pos)
		if err != nil {
			c.logger.Debug("geocoder failed", "index", i, "error", err)
			continue
		}
		if name != "" {
			return name, nil
		}
	}
	return UnknownPlace, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
