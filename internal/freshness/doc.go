// Package freshness decides, for every invocation, whether the index snapshot
// must be fetched from upstream or whether the cached copy can be served as-is.
// The decision is a pure function of "now" and the cache's last-modified time;
// all wall-clock reads go through the Clock interface so callers and tests can
// pin time without touching the system clock.
//
// The heuristic only looks at the hour-of-day of the cache timestamp, never at
// its calendar date: a snapshot written at 10:00 last week still counts as
// "captured during trading" at 20:00 today. Keep this behaviour unless the
// freshness contract itself changes.
package freshness
