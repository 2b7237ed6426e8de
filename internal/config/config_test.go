package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.RequestTimeout != defaultRequestTimeout {
		t.Fatalf("RequestTimeout = %v, want %v", cfg.RequestTimeout, defaultRequestTimeout)
	}
	if cfg.Timer.Focus != 25*time.Minute || cfg.Timer.Break != 5*time.Minute {
		t.Fatalf("Timer = %+v, want 25m/5m", cfg.Timer)
	}
	if cfg.WeatherRefresh != defaultWeatherRefresh {
		t.Fatalf("WeatherRefresh = %v, want %v", cfg.WeatherRefresh, defaultWeatherRefresh)
	}
	if !cfg.Location.Share || cfg.Location.HasCoordinates() {
		t.Fatalf("Location = %+v, want share without coordinates", cfg.Location)
	}
	if !cfg.Notifications.Desktop || cfg.Notifications.Bell {
		t.Fatalf("Notifications = %+v, want desktop only", cfg.Notifications)
	}
	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoad_ParsesAndTrimsTOML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, "config.toml", `
quote_url = "  quotes.example.com/random  "
user_agent = " focushub-test "
request_timeout_seconds = 3
log_file = "  ~/logs/fh.log  "
log_level = " DEBUG "

[location]
share = true
latitude = 52.5
longitude = 13.4
place = "  Berlin "

[timer]
focus_minutes = 50
break_minutes = 10

[notifications]
desktop = false
bell = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.QuoteURL != "quotes.example.com/random" {
		t.Fatalf("QuoteURL = %q", cfg.QuoteURL)
	}
	if cfg.UserAgent != "focushub-test" {
		t.Fatalf("UserAgent = %q", cfg.UserAgent)
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Fatalf("RequestTimeout = %v, want 3s", cfg.RequestTimeout)
	}
	if !strings.HasPrefix(cfg.LogFile, home) || !strings.HasSuffix(cfg.LogFile, "fh.log") {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if !cfg.Location.HasCoordinates() || *cfg.Location.Latitude != 52.5 || *cfg.Location.Longitude != 13.4 {
		t.Fatalf("Location = %+v", cfg.Location)
	}
	if cfg.Location.Place != "Berlin" {
		t.Fatalf("Place = %q, want Berlin", cfg.Location.Place)
	}
	if cfg.Timer.Focus != 50*time.Minute || cfg.Timer.Break != 10*time.Minute {
		t.Fatalf("Timer = %+v, want 50m/10m", cfg.Timer)
	}
	if cfg.Notifications.Desktop || !cfg.Notifications.Bell {
		t.Fatalf("Notifications = %+v, want bell only", cfg.Notifications)
	}
}

func TestLoad_ParsesYAML(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	for _, name := range []string{"config.yaml", "config.yml"} {
		path := writeConfig(t, name, `
weather_url: "https://weather.example.com/v1/forecast"
weather_refresh_minutes: 0
location:
  share: false
timer:
  focus_minutes: 45
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s) returned error: %v", name, err)
		}
		if cfg.WeatherURL != "https://weather.example.com/v1/forecast" {
			t.Fatalf("WeatherURL = %q", cfg.WeatherURL)
		}
		if cfg.Location.Share {
			t.Fatalf("Location.Share = true, want false")
		}
		if cfg.WeatherRefresh != 0 {
			t.Fatalf("WeatherRefresh = %v, want disabled", cfg.WeatherRefresh)
		}
		if cfg.Timer.Focus != 45*time.Minute || cfg.Timer.Break != 5*time.Minute {
			t.Fatalf("Timer = %+v, want 45m/5m", cfg.Timer)
		}
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, "config.toml", `
quote_url = "   "
log_level = ""
request_timeout_seconds = 0

[timer]
focus_minutes = -1
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.QuoteURL != "" {
		t.Fatalf("QuoteURL = %q, want empty", cfg.QuoteURL)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, defaultLogLevel)
	}
	if cfg.RequestTimeout != defaultRequestTimeout {
		t.Fatalf("RequestTimeout = %v, want %v", cfg.RequestTimeout, defaultRequestTimeout)
	}
	if cfg.Timer.Focus != 25*time.Minute {
		t.Fatalf("Timer.Focus = %v, want 25m", cfg.Timer.Focus)
	}
}

func TestLoad_InvalidLocation(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name string
		body string
	}{
		{"latitude only", "[location]\nlatitude = 10.0\n"},
		{"latitude range", "[location]\nlatitude = 91.0\nlongitude = 0.0\n"},
		{"longitude range", "[location]\nlatitude = 0.0\nlongitude = -181.0\n"},
		{"negative refresh", "weather_refresh_minutes = -5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, "config.toml", tt.body)
			if _, err := Load(path); err == nil {
				t.Fatal("Load returned nil error, want validation error")
			}
		})
	}
}

func TestLoad_ParseError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeConfig(t, "config.toml", "quote_url = [")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %v, want parse config error", err)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/x/y")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	if got != filepath.Join(home, "x", "y") {
		t.Fatalf("expandPath = %q, want %q", got, filepath.Join(home, "x", "y"))
	}
	if _, err := expandPath("   "); err == nil {
		t.Fatal("expandPath(blank) returned nil error")
	}
}
