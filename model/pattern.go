package model

// NamedStopRef is a stop or timing point as named by the transit provider.
type NamedStopRef struct {
	Name   string
	StopID string
}

// JourneyPattern is one directional route variant of a line.
type JourneyPattern struct {
	Direction    Direction
	StopPoints   []NamedStopRef
	TimingPoints []NamedStopRef
}
