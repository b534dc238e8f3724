package arrivals

import (
	"strconv"
	"time"

	"github.com/theoremus-urban-solutions/sftraintimes/model"
)

// field offsets within YYYY-MM-DDTHH:MM:SS
var timestampFields = [6][2]int{
	{0, 4},   // year
	{5, 7},   // month
	{8, 10},  // day
	{11, 13}, // hour
	{14, 16}, // minute
	{17, 19}, // second
}

// ParseTimestamp reads an arrival timestamp by fixed offsets. Anything after
// the seconds field is ignored.
func ParseTimestamp(ts string) (time.Time, error) {
	if len(ts) < 19 {
		return time.Time{}, &model.InvalidInputError{Msg: "arrival timestamp too short: " + strconv.Quote(ts)}
	}
	var v [6]int
	for i, f := range timestampFields {
		n, err := strconv.Atoi(ts[f[0]:f[1]])
		if err != nil || n < 0 {
			return time.Time{}, &model.InvalidInputError{Msg: "malformed arrival timestamp " + strconv.Quote(ts), Err: err}
		}
		v[i] = n
	}
	return time.Date(v[0], time.Month(v[1]), v[2], v[3], v[4], v[5], 0, time.UTC), nil
}

// MinutesUntil returns the whole minutes from now until the arrival in ts,
// rounded toward negative infinity: 4m59s is 4, 30s ago is -1.
func MinutesUntil(ts string, now time.Time) (int, error) {
	arrival, err := ParseTimestamp(ts)
	if err != nil {
		return 0, err
	}
	diff := arrival.Sub(now.UTC())
	minutes := diff / time.Minute
	if diff%time.Minute < 0 {
		minutes--
	}
	return int(minutes), nil
}
