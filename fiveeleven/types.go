package fiveeleven

import (
	"fmt"

	"github.com/theoremus-urban-solutions/sftraintimes/model"
)

type patternsResponse struct {
	JourneyPatterns []journeyPattern `json:"journeyPatterns"`
}

type journeyPattern struct {
	LineRef          string           `json:"LineRef,omitempty"`
	Name             string           `json:"Name,omitempty"`
	DirectionRef     *model.Direction `json:"DirectionRef"`
	PointsInSequence pointsInSequence `json:"PointsInSequence"`
}

type pointsInSequence struct {
	StopPointInJourneyPattern   []pointInPattern `json:"StopPointInJourneyPattern"`
	TimingPointInJourneyPattern []pointInPattern `json:"TimingPointInJourneyPattern"`
}

type pointInPattern struct {
	Name                  string `json:"Name"`
	ScheduledStopPointRef string `json:"ScheduledStopPointRef"`
}

type stopMonitoringResponse struct {
	ServiceDelivery struct {
		ResponseTimestamp      string `json:"ResponseTimestamp"`
		StopMonitoringDelivery struct {
			MonitoredStopVisit []monitoredStopVisit `json:"MonitoredStopVisit"`
		} `json:"StopMonitoringDelivery"`
	} `json:"ServiceDelivery"`
}

type monitoredStopVisit struct {
	RecordedAtTime          string `json:"RecordedAtTime"`
	MonitoredVehicleJourney struct {
		LineRef         string `json:"LineRef"`
		DestinationName string `json:"DestinationName"`
		MonitoredCall   struct {
			StopPointRef        string `json:"StopPointRef"`
			AimedArrivalTime    string `json:"AimedArrivalTime"`
			ExpectedArrivalTime string `json:"ExpectedArrivalTime"`
		} `json:"MonitoredCall"`
	} `json:"MonitoredVehicleJourney"`
}

func (p journeyPattern) toModel() (model.JourneyPattern, error) {
	if p.DirectionRef == nil {
		return model.JourneyPattern{}, fmt.Errorf("journey pattern %q has no DirectionRef", p.Name)
	}
	return model.JourneyPattern{
		Direction:    *p.DirectionRef,
		StopPoints:   toRefs(p.PointsInSequence.StopPointInJourneyPattern),
		TimingPoints: toRefs(p.PointsInSequence.TimingPointInJourneyPattern),
	}, nil
}

func toRefs(points []pointInPattern) []model.NamedStopRef {
	out := make([]model.NamedStopRef, 0, len(points))
	for _, pt := range points {
		out = append(out, model.NamedStopRef{Name: pt.Name, StopID: pt.ScheduledStopPointRef})
	}
	return out
}

func (v monitoredStopVisit) toModel() model.Visit {
	mvj := v.MonitoredVehicleJourney
	return model.Visit{
		AimedArrivalTime: mvj.MonitoredCall.AimedArrivalTime,
		LineRef:          mvj.LineRef,
		DestinationName:  mvj.DestinationName,
	}
}
