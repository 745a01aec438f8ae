// Package cache defines the single-slot, disk-backed store that keeps the most
// recent index snapshot between invocations. Writes go through a temp file in
// the same directory followed by a rename, so concurrent status-bar ticks never
// observe a truncated payload; the last writer wins. The file's ModTime is the
// only metadata the freshness policy relies on.
package cache
