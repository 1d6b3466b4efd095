// Package server holds the HTTP server configuration partial.
//
// It contains the listen port, the optional API key and the read-only
// governance flag consumed by the middleware stack in cmd/start.
package server
