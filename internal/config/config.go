package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config captures FocusHub's runtime settings.
type Config struct {
	// Endpoint overrides. Empty means the fetcher's built-in default.
	QuoteURL     string
	WeatherURL   string
	GeocoderURL  string
	IPLocatorURL string

	UserAgent      string
	RequestTimeout time.Duration
	// WeatherRefresh re-fetches the weather periodically. Zero disables it.
	WeatherRefresh time.Duration

	Location      Location
	Timer         Timer
	Notifications Notifications

	LogFile  string
	LogLevel string
}

// Location controls how the weather screen finds the user.
type Location struct {
	Share     bool
	Latitude  *float64
	Longitude *float64
	Place     string
}

// HasCoordinates reports whether a fixed position is configured.
func (l Location) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// Timer holds the session lengths.
type Timer struct {
	Focus time.Duration
	Break time.Duration
}

// Notifications selects how a finished session is announced.
type Notifications struct {
	Desktop bool
	Bell    bool
}

const (
	defaultConfigPath     = "~/.config/focushub/config.toml"
	defaultLogFile        = "~/.local/state/focushub/focushub.log"
	defaultLogLevel       = "info"
	defaultRequestTimeout = 10 * time.Second
	defaultWeatherRefresh = 30 * time.Minute
	defaultFocusMinutes   = 25
	defaultBreakMinutes   = 5
)

type rawConfig struct {
	QuoteURL              string `toml:"quote_url" yaml:"quote_url"`
	WeatherURL            string `toml:"weather_url" yaml:"weather_url"`
	GeocoderURL           string `toml:"geocoder_url" yaml:"geocoder_url"`
	IPLocatorURL          string `toml:"ip_locator_url" yaml:"ip_locator_url"`
	UserAgent             string `toml:"user_agent" yaml:"user_agent"`
	RequestTimeoutSeconds int    `toml:"request_timeout_seconds" yaml:"request_timeout_seconds"`
	WeatherRefreshMinutes *int   `toml:"weather_refresh_minutes" yaml:"weather_refresh_minutes"`
	LogFile               string `toml:"log_file" yaml:"log_file"`
	LogLevel              string `toml:"log_level" yaml:"log_level"`

	Location struct {
		Share     *bool    `toml:"share" yaml:"share"`
		Latitude  *float64 `toml:"latitude" yaml:"latitude"`
		Longitude *float64 `toml:"longitude" yaml:"longitude"`
		Place     string   `toml:"place" yaml:"place"`
	} `toml:"location" yaml:"location"`

	Timer struct {
		FocusMinutes int `toml:"focus_minutes" yaml:"focus_minutes"`
		BreakMinutes int `toml:"break_minutes" yaml:"break_minutes"`
	} `toml:"timer" yaml:"timer"`

	Notifications struct {
		Desktop *bool `toml:"desktop" yaml:"desktop"`
		Bell    bool  `toml:"bell" yaml:"bell"`
	} `toml:"notifications" yaml:"notifications"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		RequestTimeout: defaultRequestTimeout,
		WeatherRefresh: defaultWeatherRefresh,
		Location:       Location{Share: true},
		Timer: Timer{
			Focus: defaultFocusMinutes * time.Minute,
			Break: defaultBreakMinutes * time.Minute,
		},
		Notifications: Notifications{Desktop: true},
		LogFile:       mustExpand(defaultLogFile),
		LogLevel:      defaultLogLevel,
	}
}

// Load reads the config at path, falling back to defaults when it is missing.
// Files ending in .yaml or .yml are parsed as YAML, everything else as TOML.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	switch strings.ToLower(filepath.Ext(resolved)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &raw)
	default:
		err = toml.Unmarshal(bytes, &raw)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return raw.resolve()
}

func (raw rawConfig) resolve() (Config, error) {
	cfg := Default()

	cfg.QuoteURL = strings.TrimSpace(raw.QuoteURL)
	cfg.WeatherURL = strings.TrimSpace(raw.WeatherURL)
	cfg.GeocoderURL = strings.TrimSpace(raw.GeocoderURL)
	cfg.IPLocatorURL = strings.TrimSpace(raw.IPLocatorURL)
	cfg.UserAgent = strings.TrimSpace(raw.UserAgent)

	if raw.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(raw.RequestTimeoutSeconds) * time.Second
	}

	if raw.WeatherRefreshMinutes != nil {
		if *raw.WeatherRefreshMinutes < 0 {
			return Config{}, fmt.Errorf("validate config: weather_refresh_minutes must not be negative")
		}
		cfg.WeatherRefresh = time.Duration(*raw.WeatherRefreshMinutes) * time.Minute
	}

	if raw.Location.Share != nil {
		cfg.Location.Share = *raw.Location.Share
	}
	cfg.Location.Place = strings.TrimSpace(raw.Location.Place)
	lat, lon := raw.Location.Latitude, raw.Location.Longitude
	if (lat == nil) != (lon == nil) {
		return Config{}, fmt.Errorf("validate config: location needs both latitude and longitude")
	}
	if lat != nil {
		if *lat < -90 || *lat > 90 {
			return Config{}, fmt.Errorf("validate config: latitude %v out of range", *lat)
		}
		if *lon < -180 || *lon > 180 {
			return Config{}, fmt.Errorf("validate config: longitude %v out of range", *lon)
		}
		cfg.Location.Latitude, cfg.Location.Longitude = lat, lon
	}

	if raw.Timer.FocusMinutes > 0 {
		cfg.Timer.Focus = time.Duration(raw.Timer.FocusMinutes) * time.Minute
	}
	if raw.Timer.BreakMinutes > 0 {
		cfg.Timer.Break = time.Duration(raw.Timer.BreakMinutes) * time.Minute
	}

	if raw.Notifications.Desktop != nil {
		cfg.Notifications.Desktop = *raw.Notifications.Desktop
	}
	cfg.Notifications.Bell = raw.Notifications.Bell

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if level := strings.ToLower(strings.TrimSpace(raw.LogLevel)); level != "" {
		cfg.LogLevel = level
	}
	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
