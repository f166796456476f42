package model

import "time"

// Category is a user-defined group of trackers. Title is the unique key.
type Category struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Trackers  []Tracker `gorm:"foreignKey:CategoryID"`
}
