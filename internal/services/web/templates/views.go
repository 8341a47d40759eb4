// Package templates renders the lookup page and its HTMX fragments as templ
// components.
package templates

import (
	"golang.org/x/text/message"
)

// Localizer resolves user-facing copy by message key.
type Localizer interface {
	Sprintf(key message.Reference, args ...interface{}) string
}

// T resolves a message key, falling back to the key itself when no localizer
// is configured.
func T(loc Localizer, key message.Reference, args ...interface{}) string {
	if loc == nil {
		if s, ok := key.(string); ok {
			return s
		}
		return ""
	}
	return loc.Sprintf(key, args...)
}

// ToastView carries one transient notice for rendering.
type ToastView struct {
	// Kind selects the alert style: success, info, warning, or error.
	Kind string
	// Message is the localized notice text.
	Message string
}

// ResultView carries a rendered explanation keyed to its term.
type ResultView struct {
	Term        string
	Explanation string
}

// LookupPageParams provides everything the lookup page needs to render.
type LookupPageParams struct {
	Loc      Localizer
	Lang     string
	AppName  string
	Term     string
	Examples []string
	Toast    *ToastView
	Result   *ResultView
}
