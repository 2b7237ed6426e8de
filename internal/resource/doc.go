// Package resource implements stores whose value is loaded from a remote
// source: the daily quote and the local weather.
//
// A Resource tracks three things in its State: the last good value, whether
// a fetch is in flight, and the message from the most recent failure.
//
//	Refresh()
//	   │  inflight? ──yes──> return the in-flight Request (no new fetch)
//	   │
//	   ├─> IsLoading = true, Err = ""
//	   ├─> Fetch(ctx)                      (goroutine)
//	   └─> settle:
//	         success   → Value, HasValue, Err = ""
//	         failure   → Err = message(err), Value untouched
//	         cancelled → nothing but IsLoading = false
//
// Failures are classified as ErrPermissionDenied, ErrTransport or
// ErrBadResponse. Classification only affects the rendered message; every
// failure ends up in Err and none is returned to the caller of Refresh.
//
// The first Subscribe on a resource with no value starts a fetch. Leaving
// subscribers do not cancel anything: the fetch completes and updates the
// shared state for whoever subscribes next.
package resource
