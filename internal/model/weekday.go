package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// WeekdaySet is a bitmask over time.Weekday. Membership is tested with bit
// operations rather than day-name substring matching, which breaks as soon
// as one day name is a textual prefix of another.
type WeekdaySet uint8

// EveryDay has all seven weekdays set.
const EveryDay WeekdaySet = 0x7f

func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s = s.With(d)
	}
	return s
}

func (s WeekdaySet) With(d time.Weekday) WeekdaySet {
	return s | 1<<uint(d)
}

func (s WeekdaySet) Contains(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

func (s WeekdaySet) IsEmpty() bool {
	return s == 0
}

// ActiveOn reports whether a tracker with this schedule shows up on the
// given weekday. An empty set marks a one-off irregular event, which is
// active every day.
func (s WeekdaySet) ActiveOn(d time.Weekday) bool {
	return s.IsEmpty() || s.Contains(d)
}

// Days lists the set members in Monday-first order.
func (s WeekdaySet) Days() []time.Weekday {
	var days []time.Weekday
	for i := 0; i < 7; i++ {
		d := time.Weekday((i + 1) % 7)
		if s.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

// String joins the member day names with a comma, e.g. "Monday,Wednesday".
// The separator keeps the stored form unambiguous for exact token matching.
func (s WeekdaySet) String() string {
	days := s.Days()
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, d.String())
	}
	return strings.Join(names, ",")
}

// ParseWeekdaySet reads a comma-joined day-name string back into a set.
// Each token must be a full English day name; matching is per token, never
// by substring.
func ParseWeekdaySet(raw string) (WeekdaySet, error) {
	var s WeekdaySet
	if strings.TrimSpace(raw) == "" {
		return s, nil
	}
	for _, token := range strings.Split(raw, ",") {
		name := strings.TrimSpace(token)
		found := false
		for d := time.Sunday; d <= time.Saturday; d++ {
			if d.String() == name {
				s = s.With(d)
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown weekday %q", name)
		}
	}
	return s, nil
}

func (s *WeekdaySet) Scan(value interface{}) error {
	switch v := value.(type) {
	case int64:
		*s = WeekdaySet(v)
		return nil
	case nil:
		*s = 0
		return nil
	default:
		return fmt.Errorf("cannot scan %T into WeekdaySet", value)
	}
}

func (s WeekdaySet) Value() (driver.Value, error) {
	return int64(s), nil
}
