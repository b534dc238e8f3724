package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/sftraintimes/model"
)

type fakePatterns struct {
	patterns []model.JourneyPattern
	err      error
	calls    []string
}

func (f *fakePatterns) GetPatternsForLine(_ context.Context, lineID string) ([]model.JourneyPattern, error) {
	f.calls = append(f.calls, lineID)
	return f.patterns, f.err
}

func linePatterns() []model.JourneyPattern {
	return []model.JourneyPattern{
		{
			Direction:    model.Outbound,
			StopPoints:   []model.NamedStopRef{{Name: "Church St & 24th St", StopID: "OB-24"}},
			TimingPoints: []model.NamedStopRef{{Name: "Church St & 18th St", StopID: "OB-18"}},
		},
		{
			Direction:    model.Inbound,
			StopPoints:   []model.NamedStopRef{{Name: "Church St & 18th St", StopID: "13895"}},
			TimingPoints: []model.NamedStopRef{{Name: "Church St & 24th St", StopID: "13996"}},
		},
		{
			Direction:    model.Inbound,
			StopPoints:   []model.NamedStopRef{{Name: "CHURCH ST & 24TH ST", StopID: "later"}},
			TimingPoints: nil,
		},
	}
}

func TestResolve_TimingPointMatch(t *testing.T) {
	src := &fakePatterns{patterns: linePatterns()}
	r := NewStopResolver(src)

	id, found, err := r.Resolve(context.Background(), "KJ", "church st & 24th st", model.Inbound)
	require.NoError(t, err)
	assert.True(t, found)
	// timing point of the first inbound pattern wins over a stop point of a later one
	assert.Equal(t, "13996", id)
}

func TestResolve_StopPointsBeforeTimingPoints(t *testing.T) {
	src := &fakePatterns{patterns: []model.JourneyPattern{{
		Direction:    model.Inbound,
		StopPoints:   []model.NamedStopRef{{Name: "A & B", StopID: "stop"}},
		TimingPoints: []model.NamedStopRef{{Name: "a & b", StopID: "timing"}},
	}}}

	id, found, err := NewStopResolver(src).Resolve(context.Background(), "N", "a & b", model.Inbound)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "stop", id)
}

func TestResolve_DirectionFilter(t *testing.T) {
	src := &fakePatterns{patterns: linePatterns()}

	id, found, err := NewStopResolver(src).Resolve(context.Background(), "KJ", "church st & 24th st", model.Outbound)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "OB-24", id)
}

func TestResolve_NotFound(t *testing.T) {
	tests := []struct {
		name     string
		patterns []model.JourneyPattern
		stop     string
		dir      model.Direction
	}{
		{"empty pattern list", nil, "church st & 24th st", model.Inbound},
		{"empty points", []model.JourneyPattern{{Direction: model.Inbound}}, "church st & 24th st", model.Inbound},
		{"no direction match", []model.JourneyPattern{linePatterns()[0]}, "church st & 24th st", model.Inbound},
		{"no name match", linePatterns(), "market st & castro st", model.Inbound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, found, err := NewStopResolver(&fakePatterns{patterns: tt.patterns}).Resolve(context.Background(), "N", tt.stop, tt.dir)
			require.NoError(t, err)
			assert.False(t, found)
			assert.Empty(t, id)
		})
	}
}

func TestResolve_LineNormalization(t *testing.T) {
	for _, line := range []string{"J", "K", "j", " k "} {
		src := &fakePatterns{}
		_, _, err := NewStopResolver(src).Resolve(context.Background(), line, "x & y", model.Inbound)
		require.NoError(t, err)
		assert.Equal(t, []string{"KJ"}, src.calls, line)
	}

	src := &fakePatterns{}
	_, _, err := NewStopResolver(src).Resolve(context.Background(), "N", "x & y", model.Inbound)
	require.NoError(t, err)
	assert.Equal(t, []string{"N"}, src.calls)
}

func TestResolve_RefetchesEveryCall(t *testing.T) {
	src := &fakePatterns{patterns: linePatterns()}
	r := NewStopResolver(src)
	for i := 0; i < 3; i++ {
		_, _, err := r.Resolve(context.Background(), "KJ", "church st & 24th st", model.Inbound)
		require.NoError(t, err)
	}
	assert.Len(t, src.calls, 3)
}

func TestResolve_Errors(t *testing.T) {
	boom := errors.New("boom")
	_, _, err := NewStopResolver(&fakePatterns{err: boom}).Resolve(context.Background(), "N", "x & y", model.Inbound)
	assert.ErrorIs(t, err, boom)

	_, _, err = NewStopResolver(&fakePatterns{}).Resolve(context.Background(), "  ", "x & y", model.Inbound)
	assert.True(t, model.IsInvalidInput(err))
}
