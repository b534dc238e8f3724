package fiveeleven

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/sftraintimes/model"
)

const patternsBody = "\ufeff" + `{
  "journeyPatterns": [
    {
      "LineRef": "KJ",
      "DirectionRef": "IB",
      "PointsInSequence": {
        "StopPointInJourneyPattern": [{"Order": "1", "Name": "Church St & 18th St", "ScheduledStopPointRef": "13895"}],
        "TimingPointInJourneyPattern": [{"Order": "2", "Name": "Church St & 24th St", "ScheduledStopPointRef": "13996"}]
      }
    },
    {
      "LineRef": "KJ",
      "DirectionRef": "OB",
      "PointsInSequence": {"StopPointInJourneyPattern": [], "TimingPointInJourneyPattern": []}
    }
  ]
}`

const stopMonitoringBody = `{
  "ServiceDelivery": {
    "ResponseTimestamp": "2024-03-09T17:30:00Z",
    "StopMonitoringDelivery": {
      "MonitoredStopVisit": [
        {"MonitoredVehicleJourney": {"LineRef": "KJ", "DestinationName": "Balboa Park", "MonitoredCall": {"AimedArrivalTime": "2024-03-09T17:34:00Z"}}},
        {"MonitoredVehicleJourney": {"LineRef": "KJ", "DestinationName": "Balboa Park", "MonitoredCall": {"AimedArrivalTime": "2024-03-09T17:46:00Z"}}}
      ]
    }
  }
}`

func newTestServer(t *testing.T, status int, body string, seen *url.URL) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seen = *r.URL
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGetPatternsForLine(t *testing.T) {
	var seen url.URL
	srv := newTestServer(t, http.StatusOK, patternsBody, &seen)
	c := NewClient(srv.URL, "secret", "SF", time.Second)

	patterns, err := c.GetPatternsForLine(context.Background(), "KJ")
	require.NoError(t, err)

	assert.Equal(t, "/patterns", seen.Path)
	assert.Equal(t, "SF", seen.Query().Get("operator_id"))
	assert.Equal(t, "KJ", seen.Query().Get("line_id"))
	assert.Equal(t, "secret", seen.Query().Get("api_key"))

	require.Len(t, patterns, 2)
	assert.Equal(t, model.JourneyPattern{
		Direction:    model.Inbound,
		StopPoints:   []model.NamedStopRef{{Name: "Church St & 18th St", StopID: "13895"}},
		TimingPoints: []model.NamedStopRef{{Name: "Church St & 24th St", StopID: "13996"}},
	}, patterns[0])
	assert.Equal(t, model.Outbound, patterns[1].Direction)
	assert.Empty(t, patterns[1].StopPoints)
}

func TestGetPatternsForLine_UnknownDirection(t *testing.T) {
	var seen url.URL
	srv := newTestServer(t, http.StatusOK, `{"journeyPatterns":[{"DirectionRef":"N"}]}`, &seen)

	_, err := NewClient(srv.URL, "k", "", time.Second).GetPatternsForLine(context.Background(), "N")
	assert.Error(t, err)
}

func TestGetPatternsForLine_MissingDirection(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no key", `{"journeyPatterns":[{"PointsInSequence":{"StopPointInJourneyPattern":[{"Name":"Church St & 24th St","ScheduledStopPointRef":"WRONG"}]}}]}`},
		{"null", `{"journeyPatterns":[{"DirectionRef":null,"PointsInSequence":{"StopPointInJourneyPattern":[{"Name":"Church St & 24th St","ScheduledStopPointRef":"WRONG"}]}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen url.URL
			srv := newTestServer(t, http.StatusOK, tt.body, &seen)

			patterns, err := NewClient(srv.URL, "k", "", time.Second).GetPatternsForLine(context.Background(), "KJ")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "DirectionRef")
			assert.Nil(t, patterns)
		})
	}
}

func TestGetUpcomingVisits(t *testing.T) {
	var seen url.URL
	srv := newTestServer(t, http.StatusOK, stopMonitoringBody, &seen)

	visits, err := NewClient(srv.URL, "k", "", time.Second).GetUpcomingVisits(context.Background(), "13996")
	require.NoError(t, err)

	assert.Equal(t, "/StopMonitoring", seen.Path)
	assert.Equal(t, "SF", seen.Query().Get("agency"))
	assert.Equal(t, "13996", seen.Query().Get("stopCode"))
	assert.Equal(t, []model.Visit{
		{AimedArrivalTime: "2024-03-09T17:34:00Z", LineRef: "KJ", DestinationName: "Balboa Park"},
		{AimedArrivalTime: "2024-03-09T17:46:00Z", LineRef: "KJ", DestinationName: "Balboa Park"},
	}, visits)
}

func TestGetUpcomingVisits_NoVisits(t *testing.T) {
	var seen url.URL
	srv := newTestServer(t, http.StatusOK, `{"ServiceDelivery":{"StopMonitoringDelivery":{}}}`, &seen)

	visits, err := NewClient(srv.URL, "k", "", time.Second).GetUpcomingVisits(context.Background(), "1")
	require.NoError(t, err)
	assert.Empty(t, visits)
}

func TestClient_UnexpectedStatus(t *testing.T) {
	var seen url.URL
	srv := newTestServer(t, http.StatusUnauthorized, `Invalid API key`, &seen)

	_, err := NewClient(srv.URL, "secret", "", time.Second).GetUpcomingVisits(context.Background(), "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 401")
	assert.NotContains(t, err.Error(), "secret")
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("", "k", "", 0)
	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, DefaultAgency, c.agency)
}
