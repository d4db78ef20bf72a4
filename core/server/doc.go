// Package server holds the configuration for the HTTP surface of the
// application. The Fiber app itself is assembled in cmd/start.go; this
// package only owns the settings it is built from.
package server
