package skill

import (
	"context"
	"fmt"

	"github.com/theoremus-urban-solutions/sftraintimes/arrivals"
	"github.com/theoremus-urban-solutions/sftraintimes/formatter"
)

// NextTrain reports the wait at the user's home stop.
func (h *Handler) NextTrain(ctx context.Context, userID string) (formatter.Output, error) {
	user, err := h.users.GetUser(ctx, userID)
	if err != nil {
		return formatter.Output{}, err
	}
	if user == nil || user.HomeStopID == "" {
		return formatter.Speak(NoHomeStopMessage), nil
	}

	visits, err := h.visits.GetUpcomingVisits(ctx, user.HomeStopID)
	if err != nil {
		return formatter.Output{}, fmt.Errorf("upcoming visits for stop %s: %w", user.HomeStopID, err)
	}
	msg, err := arrivals.Message(visits, h.now())
	if err != nil {
		return formatter.Output{}, err
	}
	return formatter.Output{Speech: msg, CardTitle: NextTrainsCardTitle, CardContent: msg}, nil
}
