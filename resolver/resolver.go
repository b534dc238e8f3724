// Package resolver turns a spoken line, cross-street and direction into a
// provider stop id by scanning the line's journey patterns.
package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/theoremus-urban-solutions/sftraintimes/model"
)

// PatternSource fetches the journey patterns of a line.
type PatternSource interface {
	GetPatternsForLine(ctx context.Context, lineID string) ([]model.JourneyPattern, error)
}

// StopResolver looks stop ids up by name. It holds no state besides its source;
// every call re-fetches pattern data.
type StopResolver struct {
	patterns PatternSource
}

func NewStopResolver(patterns PatternSource) *StopResolver {
	return &StopResolver{patterns: patterns}
}

// NormalizeLineID rewrites the J and K lines to the combined KJ line.
func NormalizeLineID(lineID string) string {
	id := strings.TrimSpace(lineID)
	switch strings.ToUpper(id) {
	case "J", "K":
		return "KJ"
	}
	return id
}

// Resolve returns the id of the first stop named stopName on lineID in
// direction dir. stopName must already be lower-cased and in
// "<first> & <second>" form. found is false when nothing matches; that is
// not an error.
func (r *StopResolver) Resolve(ctx context.Context, lineID, stopName string, dir model.Direction) (stopID string, found bool, err error) {
	lineID = NormalizeLineID(lineID)
	if lineID == "" {
		return "", false, &model.InvalidInputError{Msg: "a line is required to resolve a stop"}
	}
	patterns, err := r.patterns.GetPatternsForLine(ctx, lineID)
	if err != nil {
		return "", false, fmt.Errorf("patterns for line %s: %w", lineID, err)
	}
	for _, p := range patterns {
		if p.Direction != dir {
			continue
		}
		if id, ok := matchName(p.StopPoints, stopName); ok {
			return id, true, nil
		}
		if id, ok := matchName(p.TimingPoints, stopName); ok {
			return id, true, nil
		}
	}
	return "", false, nil
}

func matchName(points []model.NamedStopRef, name string) (string, bool) {
	for _, sp := range points {
		if strings.EqualFold(sp.Name, name) {
			return sp.StopID, true
		}
	}
	return "", false
}
