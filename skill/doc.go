// Package skill dispatches inbound voice requests to the home-stop setters,
// the set-home-stop dialog and the next-train query.
//
// Handle never fails: every error is logged with the invocation id and
// turned into a spoken apology, so the platform always receives a
// well-formed response.
package skill
