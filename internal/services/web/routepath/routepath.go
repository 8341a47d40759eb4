// Package routepath centralizes web route constants so handlers, templates,
// and tests agree on URLs.
package routepath

const (
	// Root serves the lookup page.
	Root = "/"
	// Lookup receives form submissions.
	Lookup = "/lookup"
	// StaticPrefix serves embedded assets.
	StaticPrefix = "/static/"
	// Health is the liveness route.
	Health = "/healthz"
)
