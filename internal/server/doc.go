// Package server wires and runs the application's HTTP transport.
//
// It provides orchestration for the webhook/API server lifecycle, including
// startup, signal handling, and graceful shutdown.
package server
