// Package fiveeleven is a client for the 511.org transit API.
//
// Two endpoints are used:
//   - patterns: journey patterns of a line, used for stop resolution
//   - StopMonitoring: SIRI-shaped upcoming visits to a stop
//
// 511.org bodies may start with a UTF-8 byte order mark; it is stripped
// before decoding.
package fiveeleven
