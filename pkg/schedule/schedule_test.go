package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEvent struct {
	name  string
	start string
	daily bool
	date  *time.Time
}

func (s stubEvent) StartClock() string       { return s.start }
func (s stubEvent) IsDaily() bool            { return s.daily }
func (s stubEvent) CalendarDate() *time.Time { return s.date }

var _ Entry = stubEvent{}

func daily(name, start string) stubEvent {
	return stubEvent{name: name, start: start, daily: true}
}

func dated(name string, date *time.Time) stubEvent {
	return stubEvent{name: name, start: "06:00", date: date}
}

func datePtr(value string) *time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return &t
}

func at(clock string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", "2025-06-10 "+clock)
	if err != nil {
		panic(err)
	}
	return t
}

func names(events []stubEvent) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.name)
	}
	return out
}

func TestParseTimeOfDay(t *testing.T) {
	t.Run("accepts HH:MM:SS", func(t *testing.T) {
		got, err := ParseTimeOfDay("06:30:15")
		require.NoError(t, err)
		assert.Equal(t, 6, got.Hour())
		assert.Equal(t, 30, got.Minute())
		assert.Equal(t, 15, got.Second())
	})

	t.Run("accepts HH:MM", func(t *testing.T) {
		got, err := ParseTimeOfDay("19:45")
		require.NoError(t, err)
		assert.Equal(t, 19, got.Hour())
		assert.Equal(t, 45, got.Minute())
	})

	t.Run("anchors both layouts to the same nominal day", func(t *testing.T) {
		a, err := ParseTimeOfDay("08:00")
		require.NoError(t, err)
		b, err := ParseTimeOfDay("08:00:00")
		require.NoError(t, err)
		assert.True(t, a.Equal(b))
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, bad := range []string{"", "6am", "25:00", "12:61", "noon"} {
			_, err := ParseTimeOfDay(bad)
			assert.Error(t, err, bad)
		}
	})
}

func TestCompareTimeOfDay(t *testing.T) {
	assert.Equal(t, -1, CompareTimeOfDay("06:00", "12:00"))
	assert.Equal(t, 1, CompareTimeOfDay("19:00", "12:00"))
	assert.Equal(t, 0, CompareTimeOfDay("12:00", "12:00:00"))
}

func TestFilterByTab(t *testing.T) {
	events := []stubEvent{
		daily("aarti", "06:00"),
		dated("utsav", datePtr("2025-08-01")),
		{name: "orphan", start: "10:00"}, // one-time without a date
		daily("bhog", "12:00"),
	}

	t.Run("daily keeps recurring events only", func(t *testing.T) {
		got := FilterByTab(events, TabDaily)
		assert.Equal(t, []string{"aarti", "bhog"}, names(got))
	})

	t.Run("upcoming keeps dated events only", func(t *testing.T) {
		got := FilterByTab(events, TabUpcoming)
		assert.Equal(t, []string{"utsav"}, names(got))
	})

	t.Run("past dated events are not filtered out", func(t *testing.T) {
		past := []stubEvent{dated("old", datePtr("2001-01-01"))}
		got := FilterByTab(past, TabUpcoming)
		assert.Len(t, got, 1)
	})
}

func TestSortByStartTime(t *testing.T) {
	events := []stubEvent{
		daily("evening", "19:00"),
		daily("morning", "06:00"),
		daily("noon", "12:00"),
	}

	got := SortByStartTime(events)
	assert.Equal(t, []string{"morning", "noon", "evening"}, names(got))
	// input untouched
	assert.Equal(t, "evening", events[0].name)
}

func TestSortByStartTime_StableOnTies(t *testing.T) {
	events := []stubEvent{
		daily("first", "06:00"),
		daily("second", "06:00"),
		daily("third", "06:00:00"),
	}

	got := SortByStartTime(events)
	assert.Equal(t, []string{"first", "second", "third"}, names(got))
}

func TestSortByDate(t *testing.T) {
	t.Run("ascending with nil dates last", func(t *testing.T) {
		events := []stubEvent{
			dated("undated", nil),
			dated("march", datePtr("2025-03-01")),
			dated("november", datePtr("2024-11-15")),
		}

		got := SortByDate(events)
		assert.Equal(t, []string{"november", "march", "undated"}, names(got))
	})

	t.Run("ties keep input order", func(t *testing.T) {
		events := []stubEvent{
			dated("a", datePtr("2025-03-01")),
			dated("b", datePtr("2025-03-01")),
			dated("x", nil),
			dated("y", nil),
		}

		got := SortByDate(events)
		assert.Equal(t, []string{"a", "b", "x", "y"}, names(got))
	})
}

func TestResolveCurrentNext(t *testing.T) {
	day := []stubEvent{
		daily("morning", "06:00"),
		daily("noon", "12:00"),
		daily("evening", "19:00"),
	}

	t.Run("mid-day pivot returns current and next", func(t *testing.T) {
		got := ResolveCurrentNext(day, at("14:00"))
		assert.Equal(t, []string{"noon", "evening"}, names(got))
	})

	t.Run("before the first start returns only the first", func(t *testing.T) {
		two := []stubEvent{daily("morning", "06:00"), daily("noon", "12:00")}
		got := ResolveCurrentNext(two, at("05:00"))
		assert.Equal(t, []string{"morning"}, names(got))
	})

	t.Run("after the last start returns only the last", func(t *testing.T) {
		two := []stubEvent{daily("morning", "06:00"), daily("noon", "12:00")}
		got := ResolveCurrentNext(two, at("23:00"))
		assert.Equal(t, []string{"noon"}, names(got))
	})

	t.Run("exact start time makes that event the pivot", func(t *testing.T) {
		got := ResolveCurrentNext(day, at("12:00"))
		assert.Equal(t, []string{"morning", "noon"}, names(got))
	})

	t.Run("single event is current all day", func(t *testing.T) {
		one := []stubEvent{daily("aarti", "08:00")}
		assert.Equal(t, []string{"aarti"}, names(ResolveCurrentNext(one, at("07:00"))))
		assert.Equal(t, []string{"aarti"}, names(ResolveCurrentNext(one, at("09:00"))))
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		got := ResolveCurrentNext([]stubEvent{}, at("12:00"))
		assert.Empty(t, got)
	})

	t.Run("input order does not matter", func(t *testing.T) {
		shuffled := []stubEvent{day[2], day[0], day[1]}
		got := ResolveCurrentNext(shuffled, at("14:00"))
		assert.Equal(t, []string{"noon", "evening"}, names(got))
	})

	t.Run("result is a window of the sorted list", func(t *testing.T) {
		for _, clock := range []string{"00:00", "05:59", "06:00", "11:30", "18:59", "19:00", "23:59"} {
			got := ResolveCurrentNext(day, at(clock))
			require.NotEmpty(t, got, clock)
			require.LessOrEqual(t, len(got), 2, clock)
			if len(got) == 2 {
				assert.Equal(t, -1, CompareTimeOfDay(got[0].StartClock(), got[1].StartClock()), clock)
			}
		}
	})
}
