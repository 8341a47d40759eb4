// Package terminology hosts the medical-terminology backend function.
//
// The service exposes one named function over HTTP JSON: it accepts a medical
// term and answers with a plain-language explanation produced by a
// text-generation provider. Usage events are appended to a SQLite store for
// operational visibility; explanations are never served from storage.
package terminology
