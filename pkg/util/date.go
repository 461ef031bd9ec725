package util

import (
	"strconv"
	"time"
)

// ISODate is the wire format for candle dates.
const ISODate = "2006-01-02"

// DateFromUnix converts a unix-seconds timestamp to an ISO-8601 date
// string in UTC. Candle providers report bar timestamps as unix seconds.
func DateFromUnix(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(ISODate)
}

// ParseDate parses an ISO-8601 date string. Returns (t, true) if it parsed.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseTime tries RFC3339, RFC3339Nano, and unix seconds. Returns (t, true) if any worked.
func ParseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	if ts, err := strconv.ParseInt(s, 10, 64); err == nil && ts > 0 {
		return time.Unix(ts, 0), true
	}
	return time.Time{}, false
}
