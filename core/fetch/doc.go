// Package fetch provides the HTTP client used to retrieve raw timetable
// pages from the upstream site.
//
// The client uses a transport with strict timeouts so a stalled upstream
// never hangs a sync. Failures are classified into two sentinel errors,
// ErrUnavailable (transport) and ErrBadStatus (non-2xx response), so callers
// can tell a transient outage apart from an upstream rejection.
package fetch
