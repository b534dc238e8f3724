package model

// Visit is one upcoming arrival at a stop.
// AimedArrivalTime has the fixed layout YYYY-MM-DDTHH:MM:SS.
type Visit struct {
	AimedArrivalTime string
	LineRef          string
	DestinationName  string
}
