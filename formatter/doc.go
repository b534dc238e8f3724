// Package formatter assembles outbound voice responses.
//
// This package is organized into:
// - wrapper.go: Output value and envelope assembly
// - json.go: JSON serialization
//
// Build is a pure function of its Output; it never omits the envelope,
// so every handler path produces a well-formed payload.
package formatter
