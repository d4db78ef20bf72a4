// Package models defines the value shapes of the schedule domain: lessons,
// days, weeks, the schedule aggregate, and the change records produced by
// diffing two snapshots of the same entity. These are pure data; all behavior
// lives in the parser, snapshot, and reconcile packages.
package models
