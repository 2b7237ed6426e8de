// Package config loads FocusHub's configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/focushub/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing/empty, use defaults
//
// Files ending in .yaml or .yml are decoded as YAML; anything else is TOML.
// Both formats use the same keys.
//
// # TOML Format
//
//	quote_url = "https://dummyjson.com/quotes/random"
//	weather_url = "https://api.open-meteo.com/v1/forecast"
//	geocoder_url = "https://nominatim.openstreetmap.org/reverse"
//	ip_locator_url = "https://ipapi.co/json/"
//	user_agent = "focushub/0.1 (you@example.com)"
//	request_timeout_seconds = 10
//	weather_refresh_minutes = 30
//	log_file = "~/.local/state/focushub/focushub.log"
//	log_level = "info"
//
//	[location]
//	share = true
//	latitude = 52.52
//	longitude = 13.405
//	place = "Berlin"
//
//	[timer]
//	focus_minutes = 25
//	break_minutes = 5
//
//	[notifications]
//	desktop = true
//	bell = false
//
// Every key is optional. Blank endpoint URLs leave the fetcher's built-in
// default in place. Latitude and longitude must be given together; without
// them the weather screen estimates the position from the public IP address.
// weather_refresh_minutes = 0 turns periodic weather refresh off.
// Setting location.share to false makes the weather screen report a denied
// location permission instead.
//
// # Path Expansion
//
// A leading tilde in the config path or log_file is expanded to the home
// directory, and relative paths are made absolute.
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files, parse
// errors and out-of-range coordinates. A missing file is not an error.
package config
