package utils

import "time"

// Timestamp renders t in UTC as RFC 3339, the form arrival times are
// exchanged in.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// TimestampFromUnix renders a POSIX time in seconds as Timestamp does.
func TimestampFromUnix(sec int64) string {
	return Timestamp(time.Unix(sec, 0))
}
