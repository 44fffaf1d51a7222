package testutil

import "time"

// NowAt returns a clock stuck at t.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// LocalClock returns a clock stuck at hour:00 on the calendar date in loc.
// It panics on a malformed date.
func LocalClock(date string, hour int, loc *time.Location) func() time.Time {
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		panic(err)
	}
	return NowAt(day.Add(time.Duration(hour) * time.Hour))
}
