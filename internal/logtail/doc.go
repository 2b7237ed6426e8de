// Package logtail reads the tail of FocusHub's log file for the in-app log
// pane.
//
// # Reading
//
// Read uses a ring buffer of maxLines entries so only the tail of a large
// file is held in memory. The file is scanned once and lines come back in
// chronological order. Lines longer than 1MB stop the scan with an error.
//
//	lines, err := logtail.Read(cfg.LogFile, 200)
//
// A missing file is not an error: the log may not exist until the first
// record is written.
//
// # Parsing
//
// The log is written by log/slog's text handler, one record per line:
//
//	time=2026-01-02T15:04:05.000Z level=INFO msg="fetch succeeded" store=quote
//
// Parse splits such a line into Time, Level, Message and the remaining
// Fields, unquoting values as it goes. Anything else (a panic trace, a line
// written by another tool) is returned with only Raw set so the UI can show
// it verbatim.
package logtail
