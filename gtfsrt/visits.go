package gtfsrt

import (
	"context"
	"fmt"
	"sort"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/sftraintimes/model"
	"github.com/theoremus-urban-solutions/sftraintimes/utils"
)

// VisitSource lists arrivals at a stop from a TripUpdates feed.
type VisitSource struct {
	client         *Client
	tripUpdatesURL string
}

func NewVisitSource(client *Client, tripUpdatesURL string) *VisitSource {
	return &VisitSource{client: client, tripUpdatesURL: tripUpdatesURL}
}

// GetUpcomingVisits returns one visit per trip stopping at stopID, ordered by
// predicted arrival. Updates carrying only a departure time use that instead.
func (s *VisitSource) GetUpcomingVisits(ctx context.Context, stopID string) ([]model.Visit, error) {
	raw, err := s.client.Fetch(ctx, s.tripUpdatesURL)
	if err != nil {
		return nil, fmt.Errorf("trip updates: %w", err)
	}
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(raw, &fm); err != nil {
		return nil, fmt.Errorf("decode trip updates: %w", err)
	}
	return visitsForStop(&fm, stopID), nil
}

type arrival struct {
	epoch   int64
	routeID string
}

func visitsForStop(fm *gtfsrtpb.FeedMessage, stopID string) []model.Visit {
	var found []arrival
	for _, e := range fm.GetEntity() {
		tu := e.GetTripUpdate()
		if tu == nil {
			continue
		}
		for _, stu := range tu.GetStopTimeUpdate() {
			if stu.GetStopId() != stopID {
				continue
			}
			if stu.GetScheduleRelationship() == gtfsrtpb.TripUpdate_StopTimeUpdate_SKIPPED {
				continue
			}
			ts := stu.GetArrival().GetTime()
			if ts == 0 {
				ts = stu.GetDeparture().GetTime()
			}
			if ts == 0 {
				continue
			}
			found = append(found, arrival{epoch: ts, routeID: tu.GetTrip().GetRouteId()})
		}
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].epoch < found[j].epoch })

	out := make([]model.Visit, 0, len(found))
	for _, a := range found {
		out = append(out, model.Visit{
			AimedArrivalTime: utils.TimestampFromUnix(a.epoch),
			LineRef:          a.routeID,
		})
	}
	return out
}
