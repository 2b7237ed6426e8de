// Package app is the composition root of FocusHub.
//
// # Startup
//
// Run performs these steps in order:
//
//  1. Load the config (TOML or YAML) from the given path or the default
//  2. Open the log file and install it as the default slog logger
//  3. Load UI preferences (theme, last screen)
//  4. Build the hub: one session timer on a real-time driver, one task list,
//     and the quote and weather resources sharing a single HTTP client
//  5. Start the weather poller if weather_refresh_minutes is non-zero
//  6. Run the TUI until the user quits or the context is cancelled
//
// # Weather Wiring
//
// The locator is chosen from the [location] section: sharing switched off
// yields a denied permission, configured coordinates are used as-is, and
// otherwise the position comes from an IP lookup. Place names are resolved
// by a chain of a configured place, the locator's own hint, then Nominatim,
// ending in "Unknown".
//
// # Session Notifications
//
// When the countdown finishes a session the timer's end hook hands an event
// to the notify dispatcher on its own goroutine.
package app
