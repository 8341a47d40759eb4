// Package branding centralizes user-facing product naming.
package branding

// AppName is the canonical product name shown in page titles and chrome.
const AppName = "MedTerm"
