package dialog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/theoremus-urban-solutions/sftraintimes/alexa"
	"github.com/theoremus-urban-solutions/sftraintimes/formatter"
	"github.com/theoremus-urban-solutions/sftraintimes/model"
	"github.com/theoremus-urban-solutions/sftraintimes/resolver"
	"github.com/theoremus-urban-solutions/sftraintimes/store"
)

// Slot names of the set-home-stop intent.
const (
	SlotLine         = "line"
	SlotDirection    = "direction"
	SlotFirstStreet  = "firstStreet"
	SlotSecondStreet = "secondStreet"
)

const (
	ConfirmationMessage = "I've set your home stop to %s and %s, %s on the %s line."
	StopNotFoundMessage = "Sorry, I couldn't find a stop at %s and %s going %s on the %s line."
)

type State int

const (
	AwaitingSlots State = iota
	Complete
)

func (s State) String() string {
	if s == Complete {
		return "COMPLETE"
	}
	return "AWAITING_SLOTS"
}

// StateOf maps the platform's dialog state onto the machine's two states.
func StateOf(dialogState string) State {
	if dialogState == alexa.DialogStateCompleted {
		return Complete
	}
	return AwaitingSlots
}

// Turn is one inbound conversational turn.
type Turn struct {
	UserID      string
	DialogState string
	Intent      alexa.Intent
}

type Options struct {
	// StrictStopResolution reports an unresolved stop to the user instead of
	// confirming with an empty stop id.
	StrictStopResolution bool
}

type Machine struct {
	users    store.UserStore
	resolver *resolver.StopResolver
	opts     Options
	log      *slog.Logger
}

func NewMachine(users store.UserStore, r *resolver.StopResolver, opts Options, log *slog.Logger) *Machine {
	if log == nil {
		log = slog.Default()
	}
	return &Machine{users: users, resolver: r, opts: opts, log: log}
}

// Advance handles one turn. user is the caller's stored record, or nil.
func (m *Machine) Advance(ctx context.Context, turn Turn, user *model.UserHomeConfig) (formatter.Output, error) {
	if StateOf(turn.DialogState) == AwaitingSlots {
		intent := turn.Intent
		return formatter.Output{Delegate: &intent}, nil
	}

	line, err := m.line(turn.Intent, user)
	if err != nil {
		return formatter.Output{}, err
	}
	dir, err := m.direction(turn.Intent, user)
	if err != nil {
		return formatter.Output{}, err
	}
	first, ok := turn.Intent.SlotValue(SlotFirstStreet)
	if !ok {
		return formatter.Output{}, &model.InvalidInputError{Msg: "missing slot " + SlotFirstStreet}
	}
	second, ok := turn.Intent.SlotValue(SlotSecondStreet)
	if !ok {
		return formatter.Output{}, &model.InvalidInputError{Msg: "missing slot " + SlotSecondStreet}
	}

	stopID, found, err := m.resolver.Resolve(ctx, line, StopName(first, second), dir)
	if err != nil {
		return formatter.Output{}, err
	}
	if !found {
		m.log.Warn("home stop not resolved", "line", line, "direction", dir.Code(), "stop", StopName(first, second))
		if m.opts.StrictStopResolution {
			return formatter.Speak(fmt.Sprintf(StopNotFoundMessage, first, second, dir.Word(), line)), nil
		}
	}

	if err := m.saveStop(ctx, turn.UserID, user, stopID); err != nil {
		return formatter.Output{}, err
	}
	return formatter.Speak(fmt.Sprintf(ConfirmationMessage, first, second, dir.Word(), line)), nil
}

// line prefers the turn's resolved value, then the stored home line.
func (m *Machine) line(intent alexa.Intent, user *model.UserHomeConfig) (string, error) {
	if v, ok := intent.ResolvedValue(SlotLine); ok {
		return resolver.NormalizeLineID(v), nil
	}
	if user != nil && user.HomeLine != "" {
		return resolver.NormalizeLineID(user.HomeLine), nil
	}
	return "", &model.InvalidInputError{Msg: "no resolved line in slot " + SlotLine}
}

// direction prefers the turn's resolved value, then the stored direction,
// and otherwise falls back to inbound.
func (m *Machine) direction(intent alexa.Intent, user *model.UserHomeConfig) (model.Direction, error) {
	if v, ok := intent.ResolvedValue(SlotDirection); ok {
		d, err := model.ParseDirectionAny(v)
		if err != nil {
			return model.Inbound, &model.InvalidInputError{Msg: "unresolvable direction", Err: err}
		}
		return d, nil
	}
	if user != nil && user.Direction != "" {
		if d, err := model.ParseDirectionAny(user.Direction); err == nil {
			return d, nil
		}
	}
	m.log.Warn("direction not resolved, defaulting to inbound")
	return model.Inbound, nil
}

func (m *Machine) saveStop(ctx context.Context, userID string, user *model.UserHomeConfig, stopID string) error {
	if userID == "" {
		return &model.InvalidInputError{Msg: "user id is required"}
	}
	if user == nil {
		return m.users.AddUser(ctx, model.UserHomeConfig{ID: userID, HomeStopID: stopID})
	}
	return m.users.UpdateUser(ctx, userID, map[string]string{model.FieldHomeStopID: stopID})
}
