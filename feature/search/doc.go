// Package search implements fuzzy resolution of free-text queries to
// timetable entities.
//
// The index is a flat list of every group and professor the timetable site
// publishes, discovered by probing configured id ranges. A query is matched
// by normalized edit distance against each entity name, scored both on the
// raw lowercased strings and on their Cyrillic-to-Latin transliterations, so
// "ivanov" finds "Иванов" and vice versa.
//
// # Components
//
//   - Builder: Probes the site's id ranges concurrently to discover entities.
//   - Cache: Persists the built index to disk between runs.
//   - Service: Keeps the index in memory and answers queries.
//   - Handler: Exposes the HTTP search endpoint.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET /search?q=... : Resolve a query to the best matching entity.
//   - POST /search/rebuild : Force a fresh index build.
package search
