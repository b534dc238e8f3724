package alexa

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const setHomeStopEvent = `{
  "version": "1.0",
  "session": {"sessionId": "s1", "new": false, "user": {"userId": "amzn1.ask.account.A"}},
  "request": {
    "type": "IntentRequest",
    "requestId": "r1",
    "dialogState": "COMPLETED",
    "intent": {
      "name": "SetHomeStopIntent",
      "confirmationStatus": "NONE",
      "slots": {
        "line": {"name": "line", "value": "jay", "extra": 1,
          "resolutions": {"resolutionsPerAuthority": [
            {"authority": "a1", "values": [{"value": {"name": "J"}}, {"value": {"name": "N"}}]},
            {"authority": "a2", "values": [{"value": {"name": "M"}}]}
          ]}},
        "firstStreet": {"name": "firstStreet", "value": "Church Street"}
      }
    }
  }
}`

func TestRequestEnvelope_Decode(t *testing.T) {
	var env RequestEnvelope
	require.NoError(t, json.Unmarshal([]byte(setHomeStopEvent), &env))

	assert.Equal(t, "amzn1.ask.account.A", env.UserID())
	assert.Equal(t, IntentRequest, env.Request.Type)
	assert.Equal(t, DialogStateCompleted, env.Request.DialogState)
	assert.Equal(t, "SetHomeStopIntent", env.Request.Intent.Name)

	v, ok := env.Request.Intent.ResolvedValue("line")
	assert.True(t, ok)
	assert.Equal(t, "J", v)

	_, ok = env.Request.Intent.ResolvedValue("firstStreet")
	assert.False(t, ok)

	s, ok := env.Request.Intent.SlotValue("firstStreet")
	assert.True(t, ok)
	assert.Equal(t, "Church Street", s)

	_, ok = env.Request.Intent.SlotValue("secondStreet")
	assert.False(t, ok)
}

func TestIntent_RawSlotsVerbatim(t *testing.T) {
	var env RequestEnvelope
	require.NoError(t, json.Unmarshal([]byte(setHomeStopEvent), &env))

	raw := env.Request.Intent.RawSlots()
	// unknown fields survive the round trip
	assert.Contains(t, string(raw), `"extra": 1`)
}

func TestIntent_RawSlotsBuiltInCode(t *testing.T) {
	i := Intent{Name: "X"}
	assert.JSONEq(t, `{}`, string(i.RawSlots()))

	i.Slots = map[string]Slot{"line": {Name: "line", Value: "N"}}
	assert.JSONEq(t, `{"line":{"name":"line","value":"N"}}`, string(i.RawSlots()))
}

func TestUserID_FallsBackToContext(t *testing.T) {
	var env RequestEnvelope
	require.NoError(t, json.Unmarshal([]byte(`{"context":{"System":{"user":{"userId":"ctx"}}},"request":{"type":"LaunchRequest"}}`), &env))
	assert.Equal(t, "ctx", env.UserID())
}
