// Package schedule resolves which darshan events at a destination are
// relevant for display: the ones happening now, the ones coming up next,
// and the ordering of daily and dated event lists. Everything here is a
// pure function of its inputs; "now" is always passed in by the caller.
package schedule

import (
	"fmt"
	"sort"
	"time"
)

// Tab selects which slice of a destination's events a listing shows.
type Tab string

const (
	TabDaily    Tab = "daily"
	TabUpcoming Tab = "upcoming"
)

// Entry is the minimal event shape the resolver needs. Satisfied by
// db_models.Event; tests use a local stub.
type Entry interface {
	// StartClock returns the event start as a time-of-day string in
	// 24-hour "HH:MM" or "HH:MM:SS" form, local venue time.
	StartClock() string
	// IsDaily reports whether the event recurs every day.
	IsDaily() bool
	// CalendarDate returns the concrete date of a one-time event,
	// nil for daily events.
	CalendarDate() *time.Time
}

// clockLayouts accepted for event start/end times.
var clockLayouts = []string{"15:04:05", "15:04"}

// ParseTimeOfDay validates a time-of-day string and anchors it to a fixed
// nominal day so two clock values can be compared numerically.
func ParseTimeOfDay(clock string) (time.Time, error) {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, clock); err == nil {
			return time.Date(2000, time.January, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time of day %q", clock)
}

// timeOfDay is the non-validating variant used while sorting: malformed
// input collapses to the zero time so the ordering stays deterministic.
func timeOfDay(clock string) time.Time {
	t, err := ParseTimeOfDay(clock)
	if err != nil {
		return time.Time{}
	}
	return t
}

// CompareTimeOfDay orders two time-of-day strings within one nominal day.
// Returns -1, 0 or 1.
func CompareTimeOfDay(a, b string) int {
	return timeOfDay(a).Compare(timeOfDay(b))
}

// FilterByTab partitions a destination's events for the given listing tab:
// daily keeps recurring events, upcoming keeps one-time events that carry a
// date. Past dated events are not excluded here; callers get them in
// chronological order and decide how to render them.
func FilterByTab[E Entry](events []E, tab Tab) []E {
	filtered := make([]E, 0, len(events))
	for _, event := range events {
		switch tab {
		case TabDaily:
			if event.IsDaily() {
				filtered = append(filtered, event)
			}
		case TabUpcoming:
			if !event.IsDaily() && event.CalendarDate() != nil {
				filtered = append(filtered, event)
			}
		}
	}
	return filtered
}

// SortByStartTime returns the events ordered ascending by start time of day.
// The input slice is left untouched.
func SortByStartTime[E Entry](events []E) []E {
	sorted := make([]E, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return CompareTimeOfDay(sorted[i].StartClock(), sorted[j].StartClock()) < 0
	})
	return sorted
}

// SortByDate returns one-time events ordered ascending by calendar date.
// Events without a date sort after all dated ones; ties keep their input
// order.
func SortByDate[E Entry](events []E) []E {
	sorted := make([]E, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := sorted[i].CalendarDate(), sorted[j].CalendarDate()
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return di.Before(*dj)
	})
	return sorted
}

// ResolveCurrentNext picks the "happening now" and "up next" daily events
// relative to now. The pivot is the first event, in start-time order, whose
// start today has not yet passed:
//
//   - pivot mid-list: its predecessor is current, the pivot is next
//   - pivot first: only the pivot is returned, nothing ran before it today
//   - no pivot: every start has passed, the last event carries the rest of
//     the day as current
//
// End times play no part; an event stays current until the next start
// arrives.
func ResolveCurrentNext[E Entry](events []E, now time.Time) []E {
	sorted := SortByStartTime(events)
	if len(sorted) == 0 {
		return sorted[:0]
	}

	pivot := -1
	for i, event := range sorted {
		if !startToday(event, now).Before(now) {
			pivot = i
			break
		}
	}

	switch {
	case pivot < 0:
		return sorted[len(sorted)-1:]
	case pivot == 0:
		return sorted[:1]
	default:
		return sorted[pivot-1 : pivot+1]
	}
}

// startToday projects an event's start time onto now's calendar date.
func startToday(event Entry, now time.Time) time.Time {
	clock := timeOfDay(event.StartClock())
	return time.Date(now.Year(), now.Month(), now.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, now.Location())
}
