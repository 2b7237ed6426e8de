package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/five82/focushub/internal/clock"
	"github.com/five82/focushub/internal/config"
	"github.com/five82/focushub/internal/logging"
	"github.com/five82/focushub/internal/pomodoro"
	"github.com/five82/focushub/internal/remote"
	"github.com/five82/focushub/internal/weather"
)

func testConfig(t *testing.T, serverURL string) config.Config {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cfg := config.Default()
	cfg.QuoteURL = serverURL + "/quotes/random"
	cfg.WeatherURL = serverURL + "/v1/forecast"
	cfg.GeocoderURL = serverURL + "/reverse"
	cfg.IPLocatorURL = serverURL + "/json/"
	cfg.RequestTimeout = 2 * time.Second
	cfg.Notifications = config.Notifications{}
	return cfg
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/quotes/random", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"quote":"Ship it.","author":"Team"}`))
	})
	mux.HandleFunc("/json/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"latitude":1.5,"longitude":2.5,"city":"Lisbon"}`))
	})
	mux.HandleFunc("/reverse", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"address":{"town":"Sintra"}}`))
	})
	mux.HandleFunc("/v1/forecast", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"current":{"temperature_2m":21.4,"weather_code":0}}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func waitRequest(t *testing.T, wait func(context.Context) error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := wait(ctx); err != nil {
		t.Fatalf("request did not finish: %v", err)
	}
}

func TestNewHub_WiresStores(t *testing.T) {
	server := newTestServer(t)
	cfg := testConfig(t, server.URL)
	cfg.Timer = config.Timer{Focus: 50 * time.Minute, Break: 10 * time.Minute}

	h, err := newHub(context.Background(), cfg, logging.Discard(), clock.NewManual())
	if err != nil {
		t.Fatalf("newHub returned error: %v", err)
	}
	defer h.close()

	if got := h.timer.SecondsFor(pomodoro.Focus); got != 3000 {
		t.Fatalf("focus seconds = %d, want 3000", got)
	}
	if got := h.timer.SecondsFor(pomodoro.Break); got != 600 {
		t.Fatalf("break seconds = %d, want 600", got)
	}

	waitRequest(t, h.quote.Refresh(context.Background()).Wait)
	if q := h.quote.Snapshot(); !q.HasValue || q.Value.Content != "Ship it." {
		t.Fatalf("quote state = %+v", q)
	}

	waitRequest(t, h.weather.Refresh(context.Background()).Wait)
	w := h.weather.Snapshot()
	if !w.HasValue || w.Err != "" {
		t.Fatalf("weather state = %+v", w)
	}
	if w.Value.City != "Lisbon" || w.Value.TempC != 21 || w.Value.Condition.Text != "Clear Sky" {
		t.Fatalf("weather report = %+v", w.Value)
	}
}

func TestNewHub_ConfiguredPlaceWins(t *testing.T) {
	server := newTestServer(t)
	cfg := testConfig(t, server.URL)
	cfg.Location.Place = "Home"

	h, err := newHub(context.Background(), cfg, logging.Discard(), clock.NewManual())
	if err != nil {
		t.Fatalf("newHub returned error: %v", err)
	}
	defer h.close()

	waitRequest(t, h.weather.Refresh(context.Background()).Wait)
	if got := h.weather.Snapshot().Value.City; got != "Home" {
		t.Fatalf("city = %q, want Home", got)
	}
}

func TestNewHub_SharingOffDeniesLocation(t *testing.T) {
	server := newTestServer(t)
	cfg := testConfig(t, server.URL)
	cfg.Location.Share = false

	h, err := newHub(context.Background(), cfg, logging.Discard(), clock.NewManual())
	if err != nil {
		t.Fatalf("newHub returned error: %v", err)
	}
	defer h.close()

	waitRequest(t, h.weather.Refresh(context.Background()).Wait)
	w := h.weather.Snapshot()
	if w.HasValue || w.Err != "Location permission denied" {
		t.Fatalf("weather state = %+v, want permission error", w)
	}
}

func TestNewHub_BadEndpoint(t *testing.T) {
	cfg := testConfig(t, "http://127.0.0.1:1")
	cfg.QuoteURL = "http://"
	if _, err := newHub(context.Background(), cfg, logging.Discard(), clock.NewManual()); err == nil {
		t.Fatal("newHub returned nil error for an endpoint without host")
	}
}

func TestNewLocator(t *testing.T) {
	lat, lon := 10.0, 20.0
	client := remote.NewClient("", time.Second)
	ipURL, err := remote.ParseEndpoint("", weather.DefaultIPLocatorURL)
	if err != nil {
		t.Fatalf("ParseEndpoint: %v", err)
	}

	if _, ok := newLocator(config.Location{Share: false, Latitude: &lat, Longitude: &lon}, client, ipURL).(weather.Denied); !ok {
		t.Fatal("sharing off should deny even with coordinates")
	}

	static, ok := newLocator(config.Location{Share: true, Latitude: &lat, Longitude: &lon, Place: "X"}, client, ipURL).(weather.Static)
	if !ok {
		t.Fatal("coordinates should give a static locator")
	}
	if static.Position.Latitude != 10 || static.Position.Longitude != 20 || static.Position.Place != "X" {
		t.Fatalf("static position = %+v", static.Position)
	}

	if _, ok := newLocator(config.Location{Share: true}, client, ipURL).(*weather.IPLocator); !ok {
		t.Fatal("no coordinates should fall back to IP lookup")
	}
}
