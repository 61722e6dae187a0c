package utils

import "time"

// ParseDate parses a YYYY-MM-DD value. Empty input is an error, never a
// zero time, so a blank upstream field cannot land on year one.
func ParseDate(dateStr string) (*time.Time, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// DateRange returns every day from start to end inclusive, truncated to
// midnight UTC. Returns nil when start is after end.
func DateRange(start, end time.Time) []time.Time {
	start = TruncateToDay(start)
	end = TruncateToDay(end)

	if start.After(end) {
		return nil
	}

	dates := make([]time.Time, 0)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}

	return dates
}

// TruncateToDay drops the time-of-day component.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// LocalHour derives the advertiser-local hour from a fixed UTC offset rather
// than the process locale, so dispatch gating is stable across hosts.
func LocalHour(now time.Time, utcOffsetHours int) int {
	return now.UTC().Add(time.Duration(utcOffsetHours) * time.Hour).Hour()
}
