// Package server exposes the skill over HTTP: events are POSTed to /alexa and
// liveness is reported on /api/health.
package server
