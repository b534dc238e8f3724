package alexa

import "encoding/json"

const (
	ResponseVersion  = "1.0"
	PlainTextSpeech  = "PlainText"
	SimpleCard       = "Simple"
	DialogDelegate   = "Dialog.Delegate"
	ConfirmationNone = "NONE"
)

// ResponseEnvelope is the outbound payload.
type ResponseEnvelope struct {
	Version           string         `json:"version"`
	SessionAttributes map[string]any `json:"sessionAttributes"`
	Response          Response       `json:"response"`
}

type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Card             *Card         `json:"card,omitempty"`
	Directives       []Directive   `json:"directives,omitempty"`
	ShouldEndSession *bool         `json:"shouldEndSession,omitempty"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type Card struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Directive struct {
	Type          string        `json:"type"`
	UpdatedIntent UpdatedIntent `json:"updatedIntent"`
}

type UpdatedIntent struct {
	Name               string          `json:"name"`
	ConfirmationStatus string          `json:"confirmationStatus"`
	Slots              json.RawMessage `json:"slots"`
}
