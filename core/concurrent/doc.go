// Package concurrent provides a generic fan-out runner for batch operations.
//
// The runner executes a worker over a slice of items, optionally bounded by a
// concurrency limit, and collects successes and failures separately. It is
// used by the search index builder, where a single entity's fetch failure
// must not abort the whole batch.
package concurrent
