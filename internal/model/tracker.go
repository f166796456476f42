package model

import "time"

// Color is a hex RGB value like "#4A90E2".
type Color string

// Tracker is a recurring habit or one-off event the user logs. Ids are
// allocated by the store at insert time; trackers are append-only after
// that.
type Tracker struct {
	ID       int32  `gorm:"primaryKey;autoIncrement:false"`
	Name     string `validate:"required"`
	Color    Color
	Emoji    string `validate:"required"`
	Schedule WeekdaySet `gorm:"column:schedule_mask"`
	// DaysString is derived from Schedule on insert: the comma-joined day
	// names. Kept alongside the mask for ad hoc inspection of the rows.
	DaysString string
	CategoryID uint `gorm:"index"`
	CreatedAt  time.Time
}
