package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdaySetContains(t *testing.T) {
	s := NewWeekdaySet(time.Monday, time.Wednesday, time.Friday)

	assert.True(t, s.Contains(time.Monday))
	assert.True(t, s.Contains(time.Wednesday))
	assert.True(t, s.Contains(time.Friday))
	assert.False(t, s.Contains(time.Tuesday))
	assert.False(t, s.Contains(time.Sunday))
}

func TestWeekdaySetActiveOn(t *testing.T) {
	// An empty schedule marks an irregular event: active every day.
	var irregular WeekdaySet
	for d := time.Sunday; d <= time.Saturday; d++ {
		assert.True(t, irregular.ActiveOn(d))
	}

	habit := NewWeekdaySet(time.Tuesday)
	assert.True(t, habit.ActiveOn(time.Tuesday))
	assert.False(t, habit.ActiveOn(time.Monday))
}

func TestWeekdaySetString(t *testing.T) {
	tests := []struct {
		name string
		set  WeekdaySet
		want string
	}{
		{"empty", NewWeekdaySet(), ""},
		{"single", NewWeekdaySet(time.Thursday), "Thursday"},
		{"monday first", NewWeekdaySet(time.Sunday, time.Monday), "Monday,Sunday"},
		{"every day", EveryDay, "Monday,Tuesday,Wednesday,Thursday,Friday,Saturday,Sunday"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.set.String())
		})
	}
}

func TestParseWeekdaySet(t *testing.T) {
	s, err := ParseWeekdaySet("Monday,Wednesday")
	require.NoError(t, err)
	assert.Equal(t, NewWeekdaySet(time.Monday, time.Wednesday), s)

	s, err = ParseWeekdaySet("")
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())

	// Tokens must match whole day names; prefixes are rejected, not
	// substring-matched.
	_, err = ParseWeekdaySet("Mon")
	assert.Error(t, err)

	_, err = ParseWeekdaySet("Monday,Someday")
	assert.Error(t, err)
}

func TestWeekdaySetRoundTrip(t *testing.T) {
	original := NewWeekdaySet(time.Monday, time.Thursday, time.Saturday)
	parsed, err := ParseWeekdaySet(original.String())
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestWeekdaySetScanValue(t *testing.T) {
	original := NewWeekdaySet(time.Tuesday, time.Friday)
	v, err := original.Value()
	require.NoError(t, err)

	var scanned WeekdaySet
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, original, scanned)

	require.NoError(t, scanned.Scan(nil))
	assert.True(t, scanned.IsEmpty())

	assert.Error(t, scanned.Scan("Monday"))
}

func TestDayKey(t *testing.T) {
	morning := time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC)
	evening := time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC)
	nextDay := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-01", DayKey(morning))
	assert.Equal(t, DayKey(morning), DayKey(evening))
	assert.NotEqual(t, DayKey(morning), DayKey(nextDay))
}
