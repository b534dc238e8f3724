// Package alexa defines the voice-assistant wire types.
//
// RequestEnvelope is the inbound intent-classification event and
// ResponseEnvelope is the outbound payload. Both carry JSON struct tags
// matching the platform's field names.
package alexa
