package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Lookup page
	message.SetString(lang, "title.lookup", "%s | Medical Terminology Explainer")
	message.SetString(lang, "meta.description", "Type a medical term and get a plain-language explanation.")
	message.SetString(lang, "lookup.heading", "Medical Terminology Explainer")
	message.SetString(lang, "lookup.tagline", "Type a medical term and get a plain-language explanation.")
	message.SetString(lang, "lookup.placeholder", "Enter a medical term, e.g. Tachycardia")
	message.SetString(lang, "lookup.submit", "Explain")
	message.SetString(lang, "lookup.examples_heading", "Or try one of these:")
	message.SetString(lang, "lookup.result_heading", "What %q means")

	// Notices
	message.SetString(lang, "lookup.error.empty_term", "Please enter a medical term.")
	message.SetString(lang, "lookup.error.in_flight", "A lookup is already in progress.")
	message.SetString(lang, "lookup.error.request_failed", "We could not fetch an explanation. Please try again.")
}
