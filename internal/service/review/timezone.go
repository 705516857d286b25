package review

import (
	"strings"
	"time"
)

// DayStart returns the start of the current day in the user's timezone, converted to UTC.
func DayStart(now time.Time, tz *time.Location) time.Time {
	userNow := now.In(tz)
	dayStart := time.Date(userNow.Year(), userNow.Month(), userNow.Day(), 0, 0, 0, 0, tz)
	return dayStart.UTC()
}

// NextDayStart returns the start of the next day in the user's timezone, converted to UTC.
func NextDayStart(now time.Time, tz *time.Location) time.Time {
	dayStart := DayStart(now, tz)
	// AddDate handles DST correctly, Add(24h) does not
	nextDay := dayStart.In(tz).AddDate(0, 0, 1)
	return time.Date(nextDay.Year(), nextDay.Month(), nextDay.Day(), 0, 0, 0, 0, tz).UTC()
}

// ParseTimezone parses an IANA timezone name, returning UTC as fallback.
// An empty name is treated as UTC rather than the server's local zone.
func ParseTimezone(tz string) *time.Location {
	tz = strings.TrimSpace(tz)
	if tz == "" || strings.EqualFold(tz, "local") {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// localDate is a calendar date in some timezone.
type localDate struct {
	year  int
	month time.Month
	day   int
}

func dateIn(t time.Time, loc *time.Location) localDate {
	y, m, d := t.In(loc).Date()
	return localDate{year: y, month: m, day: d}
}

// addDays shifts a calendar date; time.Date normalizes overflowing days.
func (d localDate) addDays(n int) localDate {
	t := time.Date(d.year, d.month, d.day+n, 12, 0, 0, 0, time.UTC)
	return dateIn(t, time.UTC)
}
