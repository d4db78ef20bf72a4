// Package snapshot persists the last known schedule per entity.
//
// Each entity's snapshot lives under a stable cache identity derived from its
// source locator, so repeated runs address the same slot. Three backends
// implement the same Store contract: a filesystem directory (default), a
// database table, and an object storage bucket. All of them treat corrupt or
// unreadable snapshots as cache misses and guarantee that readers never
// observe a partially written snapshot.
package snapshot
