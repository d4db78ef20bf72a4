// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and integrates with the Fiber web framework so
// that every log line emitted while serving a request can carry that
// request's ray id.
package logger
