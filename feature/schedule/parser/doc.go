// Package parser extracts structured schedules from the timetable site's
// HTML pages.
//
// The extraction is page-specific and positional: weeks, days and lessons are
// emitted in publication order, which downstream diffing relies on. A missing
// title anchor or an unrecognized title format yields ErrMalformed, which
// signals an upstream markup change rather than a transient failure.
package parser
