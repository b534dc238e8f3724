package model

// Persisted field names of UserHomeConfig.
const (
	FieldID         = "id"
	FieldHomeLine   = "homeLine"
	FieldDirection  = "direction"
	FieldHomeStopID = "homeStopId"
)

// UserHomeConfig is the home stop configuration of one assistant user/device.
// Any optional field may be empty.
type UserHomeConfig struct {
	ID         string `json:"id" dynamodbav:"id"`
	HomeLine   string `json:"homeLine,omitempty" dynamodbav:"homeLine,omitempty"`
	Direction  string `json:"direction,omitempty" dynamodbav:"direction,omitempty"`
	HomeStopID string `json:"homeStopId,omitempty" dynamodbav:"homeStopId,omitempty"`
}

// UpdatableFields lists the fields a partial update may touch.
var UpdatableFields = map[string]struct{}{
	FieldHomeLine:   {},
	FieldDirection:  {},
	FieldHomeStopID: {},
}

// Apply sets the given fields on u. An empty value clears the field.
// Unknown field names are reported as an InvalidInputError and leave u
// unchanged.
func (u *UserHomeConfig) Apply(fields map[string]string) error {
	for k := range fields {
		if _, ok := UpdatableFields[k]; !ok {
			return &InvalidInputError{Msg: "unknown user field: " + k}
		}
	}
	for k, v := range fields {
		switch k {
		case FieldHomeLine:
			u.HomeLine = v
		case FieldDirection:
			u.Direction = v
		case FieldHomeStopID:
			u.HomeStopID = v
		}
	}
	return nil
}
