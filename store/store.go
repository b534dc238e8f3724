package store

import (
	"context"

	"github.com/theoremus-urban-solutions/sftraintimes/model"
)

// UserStore is the user-record collaborator. GetUser returns nil, nil when
// no record exists.
type UserStore interface {
	GetUser(ctx context.Context, id string) (*model.UserHomeConfig, error)
	AddUser(ctx context.Context, u model.UserHomeConfig) error
	UpdateUser(ctx context.Context, id string, fields map[string]string) error
}

func validateFields(fields map[string]string) error {
	for k := range fields {
		if _, ok := model.UpdatableFields[k]; !ok {
			return &model.InvalidInputError{Msg: "unknown user field: " + k}
		}
	}
	return nil
}
