package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/five82/focushub/internal/clock"
	"github.com/five82/focushub/internal/config"
	"github.com/five82/focushub/internal/logging"
	"github.com/five82/focushub/internal/notify"
	"github.com/five82/focushub/internal/pomodoro"
	"github.com/five82/focushub/internal/prefs"
	"github.com/five82/focushub/internal/quote"
	"github.com/five82/focushub/internal/remote"
	"github.com/five82/focushub/internal/resource"
	"github.com/five82/focushub/internal/tasks"
	"github.com/five82/focushub/internal/ui"
	"github.com/five82/focushub/internal/version"
	"github.com/five82/focushub/internal/weather"
)

// Options configure the FocusHub application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/focushub/prefs.toml
	LogLevel   string // overrides log_level from the config when set
}

// Run boots the FocusHub TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	levelName := cfg.LogLevel
	if opts.LogLevel != "" {
		levelName = opts.LogLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}
	logger, closer, err := logging.OpenFile(cfg.LogFile, level)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closer.Close() }()
	slog.SetDefault(logger)

	logger.Info("starting focushub",
		"version", version.Version,
		"commit", version.Commit,
	)

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("load prefs failed", "error", err)
	}

	h, err := newHub(ctx, cfg, logger, clock.Ticker{})
	if err != nil {
		return err
	}
	defer h.close()

	stop := StartPoller(ctx, clock.Ticker{}, cfg.WeatherRefresh, logger, h.weather)
	defer stop()

	err = ui.Run(ui.Options{
		Context:   ctx,
		Timer:     h.timer,
		Tasks:     h.tasks,
		Quote:     h.quote,
		Weather:   h.weather,
		LogPath:   cfg.LogFile,
		ThemeName: userPrefs.Theme,
		Screen:    userPrefs.Screen,
		PrefsPath: opts.PrefsPath,
		Logger:    logger,
	})
	logger.Info("focushub stopped", "error", err)
	return err
}

// hub holds the stores shared by every screen.
type hub struct {
	driver  *pomodoro.Driver
	timer   *pomodoro.Timer
	tasks   *tasks.List
	quote   *resource.Resource[quote.Quote]
	weather *resource.Resource[weather.Report]
}

func newHub(ctx context.Context, cfg config.Config, logger *slog.Logger, sched clock.Scheduler) (*hub, error) {
	client := remote.NewClient(cfg.UserAgent, cfg.RequestTimeout)

	quoteURL, err := remote.ParseEndpoint(cfg.QuoteURL, quote.DefaultURL)
	if err != nil {
		return nil, fmt.Errorf("quote_url: %w", err)
	}
	forecastURL, err := remote.ParseEndpoint(cfg.WeatherURL, weather.DefaultForecastURL)
	if err != nil {
		return nil, fmt.Errorf("weather_url: %w", err)
	}
	geocoderURL, err := remote.ParseEndpoint(cfg.GeocoderURL, weather.DefaultGeocoderURL)
	if err != nil {
		return nil, fmt.Errorf("geocoder_url: %w", err)
	}
	ipURL, err := remote.ParseEndpoint(cfg.IPLocatorURL, weather.DefaultIPLocatorURL)
	if err != nil {
		return nil, fmt.Errorf("ip_locator_url: %w", err)
	}

	var geocoders []weather.Geocoder
	if cfg.Location.Place != "" {
		geocoders = append(geocoders, weather.Fixed(cfg.Location.Place))
	}
	geocoders = append(geocoders, weather.Hint{}, weather.NewNominatim(client, geocoderURL))

	service := weather.NewService(
		newLocator(cfg.Location, client, ipURL),
		weather.NewChain(logger, geocoders...),
		client,
		forecastURL,
	)

	resourceOpts := []resource.Option{
		resource.WithContext(ctx),
		resource.WithLogger(logger),
		resource.WithTimeout(cfg.RequestTimeout),
	}

	dispatcher := notify.NewDispatcher(notify.Config{
		Desktop: cfg.Notifications.Desktop,
		Bell:    cfg.Notifications.Bell,
	}, logger)

	driver := pomodoro.NewDriver(sched, logger)
	timer := pomodoro.NewTimer(driver,
		pomodoro.WithDurations(pomodoro.Durations{Focus: cfg.Timer.Focus, Break: cfg.Timer.Break}),
		pomodoro.WithLogger(logger),
		pomodoro.WithSessionEnd(func(ended pomodoro.Mode, next pomodoro.State) {
			if dispatcher.Enabled() {
				go dispatcher.Dispatch(notify.SessionEnded(ended, next))
			}
		}),
	)

	return &hub{
		driver:  driver,
		timer:   timer,
		tasks:   tasks.New(tasks.WithLogger(logger)),
		quote:   quote.NewStore(quote.NewSource(client, quoteURL), resourceOpts...),
		weather: weather.NewStore(service, resourceOpts...),
	}, nil
}

func (h *hub) close() {
	h.driver.Stop()
}

// newLocator picks how the weather screen finds the user: a denied
// permission, configured coordinates, or an IP lookup.
func newLocator(loc config.Location, getter remote.Getter, ipURL *url.URL) weather.Locator {
	switch {
	case !loc.Share:
		return weather.Denied{}
	case loc.HasCoordinates():
		return weather.Static{Position: weather.Position{
			Coordinates: weather.Coordinates{Latitude: *loc.Latitude, Longitude: *loc.Longitude},
			Place:       loc.Place,
		}}
	default:
		return weather.NewIPLocator(getter, ipURL)
	}
}
