// Package server runs the HTTP transport of the travel-booking server.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown once the run context is cancelled.
package server
