// Package timeouts defines shared timeout constants used across services.
// Centralizing these values prevents drift between service boundaries and
// makes the durations discoverable.
package timeouts

import "time"

// Lookup caps the time allowed for one terminology lookup, covering the full
// round trip to the backend function. A hung backend must never leave the
// page stuck in its loading state.
const Lookup = 30 * time.Second

// Generate caps the time the terminology service waits on the text-generation
// provider for a single explanation.
const Generate = 25 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
