package arrivals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/theoremus-urban-solutions/sftraintimes/model"
)

const (
	NextTrainMessage     = "The next train at your stop arrives in %d minutes."
	NextTwoTrainsMessage = "The next train at your stop arrives in %d minutes. After that, there's one in %d minutes."

	// SecondTrainThreshold is the wait, in minutes, below which the second
	// train is announced too.
	SecondTrainThreshold = 5
)

// ErrInsufficientVisits is returned when the message needs more upcoming
// visits than the provider returned.
var ErrInsufficientVisits = errors.New("insufficient upcoming-visit data")

// VisitSource lists upcoming visits to a stop, soonest first.
type VisitSource interface {
	GetUpcomingVisits(ctx context.Context, stopID string) ([]model.Visit, error)
}

// Message builds the next-train sentence for visits, which must be ordered
// soonest first.
func Message(visits []model.Visit, now time.Time) (string, error) {
	if len(visits) == 0 {
		return "", fmt.Errorf("no upcoming visits: %w", ErrInsufficientVisits)
	}
	first, err := MinutesUntil(visits[0].AimedArrivalTime, now)
	if err != nil {
		return "", err
	}
	if first >= SecondTrainThreshold {
		return fmt.Sprintf(NextTrainMessage, first), nil
	}
	if len(visits) < 2 {
		return "", fmt.Errorf("second visit needed for %d minute wait: %w", first, ErrInsufficientVisits)
	}
	second, err := MinutesUntil(visits[1].AimedArrivalTime, now)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(NextTwoTrainsMessage, first, second), nil
}
