// Package reconcile keeps the local snapshot cache in sync with the live
// timetable site and flags exactly what changed between syncs.
//
// The engine implements fetch-or-reuse: the live schedule is always fetched,
// the cached snapshot only serves as a diff baseline and is re-based on every
// successful sync. The diff walks weeks, days and lessons positionally, since
// upstream publishes no stable identifiers; see Diff for the consequences.
//
// A sync returns one of three outcomes, encoded in the schedule's Origin tag:
// fresh (no baseline existed), cache (live content identical to the
// baseline), or changed (with the per-field change records attached).
package reconcile
