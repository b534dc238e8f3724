package skill

import (
	"context"
	"fmt"

	"github.com/theoremus-urban-solutions/sftraintimes/formatter"
	"github.com/theoremus-urban-solutions/sftraintimes/model"
)

// SetHomeStopID stores stopID verbatim as the user's home stop.
func (h *Handler) SetHomeStopID(ctx context.Context, userID, stopID string) (formatter.Output, error) {
	if err := h.setField(ctx, userID, model.FieldHomeStopID, stopID); err != nil {
		return formatter.Output{}, err
	}
	return formatter.Speak(fmt.Sprintf(SetStopByIDMessage, stopID)), nil
}

func (h *Handler) SetHomeLine(ctx context.Context, userID, line string) (formatter.Output, error) {
	if err := h.setField(ctx, userID, model.FieldHomeLine, line); err != nil {
		return formatter.Output{}, err
	}
	return formatter.Speak(fmt.Sprintf(SetLineMessage, line)), nil
}

// SetHomeDirection accepts either a direction code or its spoken word and
// stores the code.
func (h *Handler) SetHomeDirection(ctx context.Context, userID, raw string) (formatter.Output, error) {
	dir, err := model.ParseDirectionAny(raw)
	if err != nil {
		return formatter.Output{}, &model.InvalidInputError{Msg: "unresolvable direction", Err: err}
	}
	if err := h.setField(ctx, userID, model.FieldDirection, dir.Code()); err != nil {
		return formatter.Output{}, err
	}
	return formatter.Speak(fmt.Sprintf(SetDirectionMessage, dir.Word())), nil
}

// setField creates the user record on first use and otherwise updates the
// one field.
func (h *Handler) setField(ctx context.Context, userID, field, value string) error {
	user, err := h.users.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		u := model.UserHomeConfig{ID: userID}
		if err := u.Apply(map[string]string{field: value}); err != nil {
			return err
		}
		return h.users.AddUser(ctx, u)
	}
	return h.users.UpdateUser(ctx, userID, map[string]string{field: value})
}
