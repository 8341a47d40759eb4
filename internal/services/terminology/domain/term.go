// Package domain models terminology requests and their validation rules.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// maxTermLength caps accepted terms. The form is free text; anything longer
// than this is not a medical term.
const maxTermLength = 200

var (
	// ErrEmptyTerm indicates an empty or whitespace-only term.
	ErrEmptyTerm = errors.New("term is required")
	// ErrTermTooLong indicates the term exceeds the accepted length.
	ErrTermTooLong = errors.New("term is too long")
)

// NormalizeTerm validates and canonicalizes a user-submitted term.
func NormalizeTerm(raw string) (string, error) {
	term := strings.TrimSpace(raw)
	if term == "" {
		return "", ErrEmptyTerm
	}
	if len(term) > maxTermLength {
		return "", ErrTermTooLong
	}
	return term, nil
}

// Prompt builds the text-generation instruction for a normalized term.
//
// The prompt pins the output to a short plain-language explanation so the
// page renders a single paragraph regardless of the provider's verbosity.
func Prompt(term string) string {
	return fmt.Sprintf(
		"You are a medical terminology assistant. Explain the medical term %q in plain language "+
			"that a patient without medical training can understand. Answer with a single short "+
			"paragraph of two to four sentences. Do not include headings, lists, or disclaimers. "+
			"If the input is not a recognizable medical term, say so briefly.",
		term,
	)
}
