package alexa

import "encoding/json"

// Request types.
const (
	LaunchRequest       = "LaunchRequest"
	IntentRequest       = "IntentRequest"
	SessionEndedRequest = "SessionEndedRequest"
)

// DialogStateCompleted is the only dialog state treated as complete.
const DialogStateCompleted = "COMPLETED"

// RequestEnvelope is the inbound event.
type RequestEnvelope struct {
	Version string  `json:"version"`
	Session Session `json:"session"`
	Context Context `json:"context"`
	Request Request `json:"request"`
}

type Session struct {
	SessionID string `json:"sessionId"`
	New       bool   `json:"new"`
	User      User   `json:"user"`
}

type User struct {
	UserID string `json:"userId"`
}

type Context struct {
	System struct {
		User User `json:"user"`
	} `json:"System"`
}

type Request struct {
	Type        string `json:"type"`
	RequestID   string `json:"requestId"`
	Timestamp   string `json:"timestamp"`
	Locale      string `json:"locale,omitempty"`
	DialogState string `json:"dialogState,omitempty"`
	Intent      Intent `json:"intent"`
}

// UserID returns the session user id, falling back to the context user.
func (e RequestEnvelope) UserID() string {
	if e.Session.User.UserID != "" {
		return e.Session.User.UserID
	}
	return e.Context.System.User.UserID
}

// Intent is a classified intent with its slots. The raw slot JSON is kept
// so a delegation can echo it back unchanged.
type Intent struct {
	Name               string          `json:"name"`
	ConfirmationStatus string          `json:"confirmationStatus,omitempty"`
	Slots              map[string]Slot `json:"slots,omitempty"`

	rawSlots json.RawMessage
}

func (i *Intent) UnmarshalJSON(b []byte) error {
	var aux struct {
		Name               string          `json:"name"`
		ConfirmationStatus string          `json:"confirmationStatus"`
		Slots              json.RawMessage `json:"slots"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	i.Name = aux.Name
	i.ConfirmationStatus = aux.ConfirmationStatus
	i.Slots = nil
	i.rawSlots = nil
	if len(aux.Slots) > 0 && string(aux.Slots) != "null" {
		if err := json.Unmarshal(aux.Slots, &i.Slots); err != nil {
			return err
		}
		i.rawSlots = append(json.RawMessage(nil), aux.Slots...)
	}
	return nil
}

// RawSlots returns the slots exactly as received, or the re-encoded slot map
// when the intent was built in code.
func (i Intent) RawSlots() json.RawMessage {
	if i.rawSlots != nil {
		return i.rawSlots
	}
	if i.Slots == nil {
		return json.RawMessage("{}")
	}
	b, err := json.Marshal(i.Slots)
	if err != nil {
		return json.RawMessage("{}")
	}
	return b
}

// Slot is one filled (or unfilled) slot of an intent.
type Slot struct {
	Name               string       `json:"name"`
	Value              string       `json:"value,omitempty"`
	ConfirmationStatus string       `json:"confirmationStatus,omitempty"`
	Resolutions        *Resolutions `json:"resolutions,omitempty"`
}

type Resolutions struct {
	ResolutionsPerAuthority []Authority `json:"resolutionsPerAuthority"`
}

type Authority struct {
	Authority string `json:"authority,omitempty"`
	Status    *struct {
		Code string `json:"code"`
	} `json:"status,omitempty"`
	Values []ResolutionValue `json:"values"`
}

type ResolutionValue struct {
	Value struct {
		Name string `json:"name"`
		ID   string `json:"id,omitempty"`
	} `json:"value"`
}

// SlotValue returns the literal spoken value of the named slot.
func (i Intent) SlotValue(name string) (string, bool) {
	s, ok := i.Slots[name]
	if !ok || s.Value == "" {
		return "", false
	}
	return s.Value, true
}

// ResolvedValue returns the first authority's first resolution of the named
// slot. Later authorities and candidates are ignored.
func (i Intent) ResolvedValue(name string) (string, bool) {
	s, ok := i.Slots[name]
	if !ok || s.Resolutions == nil || len(s.Resolutions.ResolutionsPerAuthority) == 0 {
		return "", false
	}
	vals := s.Resolutions.ResolutionsPerAuthority[0].Values
	if len(vals) == 0 || vals[0].Value.Name == "" {
		return "", false
	}
	return vals[0].Value.Name, true
}
