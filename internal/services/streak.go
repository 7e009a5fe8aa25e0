package services

// NextStreak applies the login-streak transition for a login happening on
// `today`. It returns the new streak and whether anything changed:
//
//   - same calendar day: no change, the day is already credited
//   - exactly one day later: streak + 1
//   - more than one day later: reset to 1
//
// The difference is taken between calendar date strings, never wall-clock
// timestamps, so the result is stable across timezones as long as `today`
// comes from Today().
func NextStreak(currentStreak int, lastLoginDate string, today string) (int, bool) {
	if lastLoginDate == today {
		return currentStreak, false
	}

	switch diff := DaysBetween(lastLoginDate, today); {
	case diff == 1:
		return currentStreak + 1, true
	default:
		return 1, true
	}
}
