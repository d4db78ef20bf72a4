// Package schedule implements the timetable retrieval feature.
//
// It ties together the lower layers into one user-facing operation: fetch an
// entity's timetable page, parse it, reconcile it against the stored snapshot,
// and return the tagged result.
//
//  1. Fetch (core/fetch): retrieves the raw HTML page from the timetable site.
//  2. Parse (parser): turns the page into a structured Schedule.
//  3. Reconcile (reconcile): diffs against the snapshot (snapshot) and tags
//     the result fresh, cache, or changed.
//
// # Components
//
//   - Service: Orchestrates the sync through the reconcile engine.
//   - Handler: Exposes HTTP endpoints for group and professor schedules.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET /schedule/group/:id : Schedule for a student group.
//   - GET /schedule/professor/:id : Schedule for a professor.
//
// Both accept ?cache=false to bypass the snapshot store.
package schedule
