// Package arrivals computes wait times for upcoming visits and picks the
// spoken next-train message.
//
// Arrival timestamps are read by fixed character offsets
// (YYYY-MM-DDTHH:MM:SS) and compared against UTC now without applying any
// zone offset found in the string.
package arrivals
