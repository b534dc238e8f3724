package skill

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/sftraintimes/alexa"
	"github.com/theoremus-urban-solutions/sftraintimes/arrivals"
	"github.com/theoremus-urban-solutions/sftraintimes/dialog"
	"github.com/theoremus-urban-solutions/sftraintimes/formatter"
	"github.com/theoremus-urban-solutions/sftraintimes/model"
	"github.com/theoremus-urban-solutions/sftraintimes/resolver"
	"github.com/theoremus-urban-solutions/sftraintimes/store"
)

// Intent names.
const (
	SetHomeStopByIDIntent  = "SetHomeStopByIdIntent"
	SetHomeLineIntent      = "SetHomeLineIntent"
	SetHomeDirectionIntent = "SetHomeDirectionIntent"
	SetHomeStopIntent      = "SetHomeStopIntent"
	GetNextTrainIntent     = "GetNextTrainIntent"
	HelpIntent             = "AMAZON.HelpIntent"
	FallbackIntent         = "AMAZON.FallbackIntent"
	StopIntent             = "AMAZON.StopIntent"
	CancelIntent           = "AMAZON.CancelIntent"
)

// Slot names of the setter intents.
const (
	SlotStopID    = "stopId"
	SlotLine      = "line"
	SlotDirection = "direction"
)

// Handler is the per-process entry point. It keeps no per-request state.
type Handler struct {
	users  store.UserStore
	visits arrivals.VisitSource
	dialog *dialog.Machine
	now    func() time.Time
	log    *slog.Logger
}

type Options struct {
	Dialog dialog.Options
	// Now overrides the clock used for wait times.
	Now func() time.Time
	Log *slog.Logger
}

func NewHandler(users store.UserStore, patterns resolver.PatternSource, visits arrivals.VisitSource, opts Options) *Handler {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Handler{
		users:  users,
		visits: visits,
		dialog: dialog.NewMachine(users, resolver.NewStopResolver(patterns), opts.Dialog, log),
		now:    now,
		log:    log,
	}
}

// Handle processes one inbound event.
func (h *Handler) Handle(ctx context.Context, env alexa.RequestEnvelope) alexa.ResponseEnvelope {
	log := h.log.With(
		"invocation", uuid.NewString(),
		"request_type", env.Request.Type,
		"intent", env.Request.Intent.Name,
	)
	log.Debug("received event", "request_id", env.Request.RequestID, "dialog_state", env.Request.DialogState)

	out, err := h.route(ctx, env, log)
	if err != nil {
		log.Error("request failed", "err", err)
		return formatter.Build(formatter.Speak(apology(err)))
	}
	return formatter.Build(out)
}

func apology(err error) string {
	switch {
	case model.IsInvalidInput(err):
		return InvalidInputApology
	case errors.Is(err, arrivals.ErrInsufficientVisits):
		return InsufficientDataApology
	default:
		return GenericApology
	}
}

func (h *Handler) route(ctx context.Context, env alexa.RequestEnvelope, log *slog.Logger) (formatter.Output, error) {
	switch env.Request.Type {
	case alexa.LaunchRequest:
		return formatter.Output{Speech: WelcomeMessage, CardTitle: CardTitle, CardContent: WelcomeMessage}, nil
	case alexa.SessionEndedRequest:
		return formatter.Output{}, nil
	case alexa.IntentRequest:
	default:
		log.Warn("unsupported request type")
		return formatter.Speak(FallbackMessage), nil
	}

	intent := env.Request.Intent
	switch intent.Name {
	case HelpIntent:
		return formatter.Speak(HelpMessage), nil
	case StopIntent, CancelIntent:
		return formatter.Speak(GoodbyeMessage), nil
	case FallbackIntent:
		return formatter.Speak(FallbackMessage), nil
	}

	userID := env.UserID()
	if userID == "" {
		return formatter.Output{}, &model.InvalidInputError{Msg: "request carries no user id"}
	}

	switch intent.Name {
	case SetHomeStopByIDIntent:
		stopID, err := requireSlot(intent, SlotStopID)
		if err != nil {
			return formatter.Output{}, err
		}
		return h.SetHomeStopID(ctx, userID, stopID)
	case SetHomeLineIntent:
		line, err := resolvedSlot(intent, SlotLine)
		if err != nil {
			return formatter.Output{}, err
		}
		return h.SetHomeLine(ctx, userID, line)
	case SetHomeDirectionIntent:
		raw, err := resolvedSlot(intent, SlotDirection)
		if err != nil {
			return formatter.Output{}, err
		}
		return h.SetHomeDirection(ctx, userID, raw)
	case SetHomeStopIntent:
		user, err := h.users.GetUser(ctx, userID)
		if err != nil {
			return formatter.Output{}, err
		}
		return h.dialog.Advance(ctx, dialog.Turn{
			UserID:      userID,
			DialogState: env.Request.DialogState,
			Intent:      intent,
		}, user)
	case GetNextTrainIntent:
		return h.NextTrain(ctx, userID)
	}

	log.Warn("unknown intent")
	return formatter.Speak(FallbackMessage), nil
}

func requireSlot(intent alexa.Intent, name string) (string, error) {
	v, ok := intent.SlotValue(name)
	if !ok {
		return "", &model.InvalidInputError{Msg: "missing slot " + name}
	}
	return v, nil
}

// resolvedSlot prefers the entity resolution over the spoken value.
func resolvedSlot(intent alexa.Intent, name string) (string, error) {
	if v, ok := intent.ResolvedValue(name); ok {
		return v, nil
	}
	return requireSlot(intent, name)
}
