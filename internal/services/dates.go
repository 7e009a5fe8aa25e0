package services

import "time"

const dateLayout = "2006-01-02"

// Today returns the current calendar date in the given location as a
// YYYY-MM-DD string. Day arithmetic everywhere else works on these strings,
// so "today" derived here is the single timezone-sensitive point.
func Today(now time.Time, location *time.Location) string {
	if location == nil {
		location = time.UTC
	}
	return now.In(location).Format(dateLayout)
}

func ParseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// DaysBetween returns the calendar-day difference to - from. Either date
// failing to parse yields 0.
func DaysBetween(from string, to string) int {
	fromDay, err := ParseDate(from)
	if err != nil {
		return 0
	}
	toDay, err := ParseDate(to)
	if err != nil {
		return 0
	}
	return int(toDay.Sub(fromDay).Hours() / 24)
}

// TrailingDates returns the last `count` calendar dates ending at `today`,
// oldest first.
func TrailingDates(today string, count int) []string {
	dates := make([]string, 0, count)
	endDay, err := ParseDate(today)
	if err != nil {
		return dates
	}
	for offset := count - 1; offset >= 0; offset-- {
		dates = append(dates, endDay.AddDate(0, 0, -offset).Format(dateLayout))
	}
	return dates
}

// WeekdayLabel returns the short weekday name ("Mon") for a date string,
// or an empty string if it does not parse.
func WeekdayLabel(date string) string {
	day, err := ParseDate(date)
	if err != nil {
		return ""
	}
	return day.Format("Mon")
}
