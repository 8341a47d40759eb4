// Package i18n provides message printing for the web service.
//
// The product ships in English only; the message catalog still routes all
// user-facing copy through one place so strings never live in templates.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Default returns the language tag all pages render with.
func Default() language.Tag {
	return language.English
}

// Printer returns the message printer for the default language.
func Printer() *message.Printer {
	return message.NewPrinter(Default())
}
