// Package ui is the FocusHub terminal interface, built on Bubble Tea.
//
// # Architecture Overview
//
// The Model owns only presentation state: the active screen, the task
// cursor, the add-task input, the log pane. Everything the user works with
// lives in the stores handed over through Options (session timer, task list,
// quote and weather resources). Views read those stores on every render and
// key handlers call the stores' action methods; the model never keeps its
// own copy of store state.
//
// # Store Bridging
//
// Run subscribes to every store before the program starts. Notifications
// arrive on whatever goroutine changed the store (the per-second timer
// driver, a finished fetch), so they go through a bridge that collapses
// bursts into a single storeChangedMsg and hands it to Program.Send without
// blocking the notifier. Subscribing is also what triggers the first quote
// and weather fetch.
//
// # Screens
//
//   - Overview: session clock, the next three open tasks with overall
//     progress, the current quote and weather
//   - Tasks: the full list with add, toggle and delete
//   - Pomodoro: large clock, progress through the session, controls
//   - Motivation: the quote, refreshable with r
//   - Weather: current conditions, refreshable with r
//   - Logs: tail of the application log, following new lines
//
// # Themes
//
// Three palettes are built in (Nightfall, Slate, Daylight). T cycles them and
// the choice is persisted through the prefs package together with the last
// open screen.
package ui
