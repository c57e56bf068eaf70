package settings

import (
	"strconv"
	"strings"
	"time"
)

// Next run display states when no concrete time can be computed.
const (
	nextRunDisabled    = "scheduled analysis disabled"
	nextRunNoTimes     = "no run times configured"
	nextRunFormatError = "invalid time format"
)

// parseBool interprets a stored boolean setting, falling back to def
// when the setting is absent.
func parseBool(value string, def bool) bool {
	if value == "" {
		return def
	}

	return strings.EqualFold(value, "true")
}

// NextRunTime computes the next scheduled run from a comma separated
// HH:MM list relative to now, formatted for display.
func NextRunTime(enabled bool, scheduleTime string, now time.Time) string {
	if !enabled {
		return nextRunDisabled
	}

	entries := splitList(scheduleTime)
	if len(entries) == 0 {
		return nextRunNoTimes
	}

	var next time.Time

	for _, entry := range entries {
		runTime, ok := runTimeToday(entry, now)
		if !ok {
			continue
		}

		if !runTime.After(now) {
			runTime = runTime.AddDate(0, 0, 1)
		}

		if next.IsZero() || runTime.Before(next) {
			next = runTime
		}
	}

	if next.IsZero() {
		return nextRunFormatError
	}

	return next.Format("2006-01-02 15:04")
}

// runTimeToday resolves an HH:MM entry against now's date.
func runTimeToday(entry string, now time.Time) (time.Time, bool) {
	if !scheduleTimePattern.MatchString(entry) {
		return time.Time{}, false
	}

	parts := strings.SplitN(entry, ":", 2)

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour > 23 {
		return time.Time{}, false
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute > 59 {
		return time.Time{}, false
	}

	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location()), true
}
