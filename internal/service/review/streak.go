package review

import "time"

// UpdateStreak decides whether an activity at now extends, keeps or resets a
// day-based streak. Days are calendar days in the user's timezone; an unknown
// timezone falls back to UTC. The returned last-activity time is now in UTC.
//
//   - no prior activity: 1
//   - same local day: unchanged
//   - previous local day: +1
//   - anything else (gap, or now before last activity): 1
func UpdateStreak(current int, lastActivity *time.Time, timezone string, now time.Time) (int, time.Time) {
	loc := ParseTimezone(timezone)
	nowUTC := now.UTC()

	if lastActivity == nil {
		return 1, nowUTC
	}

	today := dateIn(nowUTC, loc)
	last := dateIn(lastActivity.UTC(), loc)

	switch last {
	case today:
		return max(current, 1), nowUTC
	case today.addDays(-1):
		return current + 1, nowUTC
	default:
		return 1, nowUTC
	}
}

// StreakBroken reports whether a streak can no longer be continued at now,
// i.e. the last activity happened before yesterday in the user's timezone.
func StreakBroken(lastActivity *time.Time, timezone string, now time.Time) bool {
	if lastActivity == nil {
		return false
	}
	loc := ParseTimezone(timezone)
	today := dateIn(now.UTC(), loc)
	last := dateIn(lastActivity.UTC(), loc)
	return last != today && last != today.addDays(-1)
}
