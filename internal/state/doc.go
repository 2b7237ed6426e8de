// Package state provides the observable store shared by every FocusHub
// feature.
//
// # Overview
//
// A Store is a single-writer, multi-reader cell holding one value of some
// state shape S. Views subscribe to it and re-read the latest Snapshot when
// notified. The timer driver, remote fetch completions and user actions all
// write through the same Update path, so every observer sees the same copy.
//
//	Writers:                         Readers:
//	┌──────────────────┐            ┌──────────────────┐
//	│ user action      │            │ subscriber A     │
//	│ timer tick       │──Update──→ │ subscriber B     │
//	│ fetch completion │  (mutex)   │  ...Snapshot()   │
//	└──────────────────┘            └──────────────────┘
//
// # Update Semantics
//
// Update takes the write lock, applies the updater, and releases the lock
// before notifying. Notification is synchronous: Update returns after every
// subscriber registered at the time of the change has run once. Callbacks
// are stored in a map keyed by subscription id, so notification order is
// unspecified and subscribers must not depend on it.
//
// Because the lock is not held while callbacks run, a callback may call
// Snapshot, Subscribe, its own unsubscribe function, or even Update.
// A subscriber removed during a notification cycle is skipped for the
// remainder of that cycle.
//
// # Immutability
//
// Updaters must return a new value instead of mutating the one passed in.
// Slice-backed states clone before appending or filtering. This is what lets
// Snapshot return without copying.
//
// # Lifecycle
//
// Stores are constructed explicitly by the composition root (internal/app)
// and passed by pointer to their consumers. Tests build a fresh Store each
// time; there are no package-level singletons.
package state
