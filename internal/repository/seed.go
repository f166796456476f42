package repository

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"habit-tracker/internal/model"
)

// Seed preloads the categories and trackers a fresh install ships with. It
// checks whether any categories exist first, so running it on every boot
// never duplicates the seed rows.
func Seed(db *DB, categories *CategoryStore, trackers *TrackerStore, lg *zap.Logger) error {
	var count int64
	if err := db.Session().Model(&model.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		lg.Debug("seed data already present, skipping")
		return nil
	}

	for _, title := range []string{"Important", "Work", "Health", "Hobby"} {
		if _, err := categories.Add(title); err != nil {
			return fmt.Errorf("seed category %q: %w", title, err)
		}
	}

	seeds := []struct {
		category string
		tracker  model.Tracker
	}{
		{"Work", model.Tracker{Name: "Morning stand-up", Color: "#4A90E2", Emoji: "📋",
			Schedule: model.NewWeekdaySet(time.Monday, time.Wednesday, time.Friday)}},
		{"Work", model.Tracker{Name: "Inbox review", Color: "#50C8C6", Emoji: "📧",
			Schedule: model.NewWeekdaySet(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)}},
		{"Work", model.Tracker{Name: "Code review", Color: "#F5A623", Emoji: "💻",
			Schedule: model.NewWeekdaySet(time.Monday, time.Thursday)}},
		{"Health", model.Tracker{Name: "Morning run", Color: "#7ED321", Emoji: "🏃",
			Schedule: model.NewWeekdaySet(time.Monday, time.Wednesday, time.Friday, time.Sunday)}},
		{"Health", model.Tracker{Name: "Meditation", Color: "#9013FE", Emoji: "🧘",
			Schedule: model.NewWeekdaySet(time.Wednesday, time.Sunday)}},
		{"Hobby", model.Tracker{Name: "Guitar practice", Color: "#D0021B", Emoji: "🎸",
			Schedule: model.NewWeekdaySet(time.Sunday)}},
	}
	for _, s := range seeds {
		if _, err := trackers.Add(s.tracker, s.category); err != nil {
			return fmt.Errorf("seed tracker %q: %w", s.tracker.Name, err)
		}
	}

	lg.Info("seeded initial categories and trackers")
	return nil
}
