package model

import "errors"

// InvalidInputError reports caller input the skill cannot act on:
// a missing slot, an unparseable timestamp, an unknown direction.
type InvalidInputError struct {
	Msg string
	Err error
}

func (e *InvalidInputError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

// IsInvalidInput reports whether err carries an InvalidInputError.
func IsInvalidInput(err error) bool {
	var ie *InvalidInputError
	return errors.As(err, &ie)
}
