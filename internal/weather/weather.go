// Package weather loads the current conditions for the user's location.
//
// A fetch runs three steps: locate (which may be denied), name the place
// through a fallback chain of geocoders, then read the current temperature
// and weather code from an Open-Meteo forecast endpoint.
package weather

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"

	"github.com/five82/focushub/internal/remote"
	"github.com/five82/focushub/internal/resource"
)

// DefaultForecastURL is the Open-Meteo forecast endpoint.
const DefaultForecastURL = "https://api.open-meteo.com/v1/forecast"

// Report is the current weather at the user's location.
type Report struct {
	TempC     int
	City      string
	Code      int
	Condition Condition
}

// Temp formats the temperature for display.
func (r Report) Temp() string {
	return fmt.Sprintf("%d°C", r.TempC)
}

// Service fetches a Report. It implements resource.Fetcher[Report].
type Service struct {
	locator  Locator
	geocoder Geocoder
	getter   remote.Getter
	endpoint *url.URL
}

var _ resource.Fetcher[Report] = (*Service)(nil)

// NewService wires a locator, a geocoder and a forecast endpoint.
func NewService(locator Locator, geocoder Geocoder, getter remote.Getter, forecast *url.URL) *Service {
	return &Service{locator: locator, geocoder: geocoder, getter: getter, endpoint: forecast}
}

// Fetch runs locate → geocode → forecast.
func (s *Service) Fetch(ctx context.Context) (Report, error) {
	pos, err := s.locator.Locate(ctx)
	if err != nil {
		return Report{}, err
	}

	city := UnknownPlace
	if s.geocoder != nil {
		if name, err := s.geocoder.PlaceName(ctx, pos); err == nil && name != "" {
			city = name
		}
	}

	var payload struct {
		Current *struct {
			Temperature *float64 `json:"temperature_2m"`
			WeatherCode *int     `json:"weather_code"`
		} `json:"current"`
	}
	req := remote.Request{
		URL: s.endpoint,
		Query: url.Values{
			"latitude":         {formatCoord(pos.Latitude)},
			"longitude":        {formatCoord(pos.Longitude)},
			"current":          {"temperature_2m,weather_code"},
			"temperature_unit": {"celsius"},
			"timezone":         {"auto"},
			"forecast_days":    {"1"},
		},
	}
	if err := s.getter.GetJSON(ctx, req, &payload); err != nil {
		var se *remote.StatusError
		if errors.As(err, &se) {
			detail := se.Reason()
			if detail == "" {
				detail = fmt.Sprintf("API Error: Status %d", se.StatusCode)
			}
			return Report{}, &resource.Error{Kind: resource.ErrBadResponse, Detail: detail, Err: err}
		}
		return Report{}, err
	}
	if payload.Current == nil || payload.Current.Temperature == nil || payload.Current.WeatherCode == nil {
		return Report{}, resource.BadResponse("Could not parse weather data from API response.")
	}

	code := *payload.Current.WeatherCode
	return Report{
		TempC:     int(math.Round(*payload.Current.Temperature)),
		City:      city,
		Code:      code,
		Condition: Describe(code),
	}, nil
}

// NewStore wraps service in a resource store.
func NewStore(service resource.Fetcher[Report], opts ...resource.Option) *resource.Resource[Report] {
	return resource.New(service, append([]resource.Option{resource.WithName("weather")}, opts...)...)
}
