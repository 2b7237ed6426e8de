// Package remote is the HTTP boundary for FocusHub's remote data: quotes,
// forecasts, geocoding and IP geolocation.
//
// # Overview
//
// Every external API FocusHub reads is a GET returning JSON. Client wraps a
// net/http client with a request timeout, a User-Agent (Nominatim rejects
// anonymous clients) and failure classification that the resource stores
// understand:
//
//   - connection, DNS and timeout failures wrap resource.ErrTransport
//   - non-2xx responses are *StatusError, which matches resource.ErrBadResponse
//   - bodies that fail to decode wrap resource.ErrBadResponse
//
// Checking that a decoded payload carries the fields a feature needs is the
// caller's job; the client only guarantees it was valid JSON.
//
// # Testing
//
// Feature packages depend on the Getter interface so tests can point a real
// Client at an httptest.Server or substitute a fake entirely.
package remote
