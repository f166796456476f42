package model

import "time"

// DayKey formats a timestamp as the calendar-day key records are matched
// on. Two timestamps on the same day compare equal through their keys.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Record is evidence that a tracker was completed on one calendar day.
// Day is the normalized key of Date; the unique index backs the one-record-
// per-day rule enforced in the store.
type Record struct {
	ID        uint  `gorm:"primaryKey"`
	TrackerID int32 `gorm:"index:idx_record_tracker_day,unique"`
	Date      time.Time
	Day       string `gorm:"index:idx_record_tracker_day,unique"`
	CreatedAt time.Time
}
