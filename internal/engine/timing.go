package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"event-bot/internal/models"
)

// defaultStartClock is assumed when the normalized agenda is empty.
const defaultStartClock = "10:00"

// parseClock parses a 24-hour "HH:MM" string.
func parseClock(clock string) (hour, minute int, ok bool) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour > 23 {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute > 59 {
		return 0, 0, false
	}

	return hour, minute, true
}

// clockOn anchors a 24-hour clock string to the given day.
func clockOn(day time.Time, clock string) (time.Time, bool) {
	hour, minute, ok := parseClock(clock)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()), true
}

// displayClock renders a 24-hour clock string as 12-hour with AM/PM.
func displayClock(clock string) string {
	hour, minute, ok := parseClock(clock)
	if !ok {
		return clock
	}

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}

	return fmt.Sprintf("%d:%02d %s", h, minute, suffix)
}

// earliestStart returns the earliest normalized agenda time, or the default
// start clock when the agenda is empty.
func earliestStart(normalized []models.AgendaEntry) string {
	start := ""
	for _, entry := range normalized {
		if _, _, ok := parseClock(entry.Time); !ok {
			continue
		}
		if start == "" || entry.Time < start {
			start = entry.Time
		}
	}

	if start == "" {
		return defaultStartClock
	}
	return start
}

// currentSession finds the session running at now: the last agenda entry
// whose start time is at or before now, provided a later entry is still
// pending. The final listed session is deliberately never reported as
// current, since nothing bounds its end.
func currentSession(normalized []models.AgendaEntry, now time.Time) (string, bool) {
	type timedSession struct {
		at       time.Time
		activity string
	}

	var sessions []timedSession
	for _, entry := range normalized {
		if at, ok := clockOn(now, entry.Time); ok {
			sessions = append(sessions, timedSession{at: at, activity: entry.Activity})
		}
	}

	sort.Slice(sessions, func(i, j int) bool { return sessions[i].at.Before(sessions[j].at) })

	for i, s := range sessions {
		if s.at.After(now) {
			break
		}
		if i+1 < len(sessions) && now.Before(sessions[i+1].at) {
			return s.activity, true
		}
	}

	return "", false
}

// splitDuration decomposes a duration into whole hours and minutes.
func splitDuration(d time.Duration) (hours, minutes int) {
	total := int(d.Minutes())
	return total / 60, total % 60
}

// daysBetween counts whole calendar days from a to b, ignoring clock time.
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}

// sameDay reports whether two instants fall on the same calendar date.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
