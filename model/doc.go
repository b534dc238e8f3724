// Package model defines the transit and user types shared by the skill.
//
// It contains:
//   - Direction: the two-variant inbound/outbound enumeration
//   - JourneyPattern and NamedStopRef: line route variants from the transit provider
//   - UserHomeConfig: the persisted per-device home stop configuration
//   - Visit: one upcoming arrival at a stop
//   - InvalidInputError: malformed caller input
package model
