package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"habit-tracker/internal/diff"
	"habit-tracker/internal/model"
)

// TrackerStore persists trackers and owns the sectioned live query the
// tracker screen binds to: non-empty categories sorted by title, trackers
// sorted by id within each section.
type TrackerStore struct {
	db       *DB
	log      *zap.Logger
	validate *validator.Validate
	live     *trackerLiveQuery
}

func NewTrackerStore(db *DB, lg *zap.Logger) *TrackerStore {
	s := &TrackerStore{db: db, log: lg, validate: validator.New()}
	s.live = newTrackerLiveQuery(s, time.Now())
	db.register(s.live)
	return s
}

// Add allocates the next tracker id and attaches the tracker to the named
// category. Ids are assigned here and only here; callers must leave ID
// zero.
func (s *TrackerStore) Add(tracker model.Tracker, categoryTitle string) (*model.Tracker, error) {
	if err := s.validate.Struct(tracker); err != nil {
		return nil, fmt.Errorf("validate tracker: %w", err)
	}

	var category model.Category
	err := s.db.Session().Where("LOWER(title) = LOWER(?)", categoryTitle).First(&category).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}

	err = s.db.Commit(func(tx *gorm.DB) error {
		next, err := nextTrackerID(tx)
		if err != nil {
			return err
		}
		tracker.ID = next
		tracker.CategoryID = category.ID
		tracker.DaysString = tracker.Schedule.String()
		if err := tx.Create(&tracker).Error; err != nil {
			return fmt.Errorf("create tracker: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &tracker, nil
}

// nextTrackerID scans the existing ids; there is no reserved-id table.
func nextTrackerID(tx *gorm.DB) (int32, error) {
	var maxID int64
	if err := tx.Model(&model.Tracker{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&maxID).Error; err != nil {
		return 0, fmt.Errorf("next tracker id: %w", err)
	}
	return int32(maxID) + 1, nil
}

// ForDate returns the trackers scheduled on the weekday of date, id
// ascending. Trackers with an empty schedule are one-off irregular events
// and show up every day.
func (s *TrackerStore) ForDate(date time.Time) ([]model.Tracker, error) {
	bit := model.NewWeekdaySet(date.Weekday())
	var trackers []model.Tracker
	if err := s.db.Session().
		Where("schedule_mask = 0 OR schedule_mask & ? <> 0", uint8(bit)).
		Order("id ASC").
		Find(&trackers).Error; err != nil {
		return nil, fmt.Errorf("trackers for date: %w", err)
	}
	return trackers, nil
}

// GroupedByCategory returns the sectioned projection for date: categories
// that have at least one matching tracker, title ascending, trackers id
// ascending. Categories with no match are omitted, not returned empty.
// Rows missing required fields are skipped and logged rather than failing
// the whole fetch.
func (s *TrackerStore) GroupedByCategory(date time.Time) ([]model.Category, error) {
	bit := model.NewWeekdaySet(date.Weekday())
	rows, err := s.db.Session().
		Table("trackers").
		Select("trackers.id, trackers.name, trackers.color, trackers.emoji, trackers.schedule_mask, trackers.days_string, trackers.category_id, categories.id, categories.title").
		Joins("JOIN categories ON categories.id = trackers.category_id").
		Where("trackers.schedule_mask = 0 OR trackers.schedule_mask & ? <> 0", uint8(bit)).
		Order("categories.title ASC, trackers.id ASC").
		Rows()
	if err != nil {
		return nil, fmt.Errorf("grouped trackers: %w", err)
	}
	defer rows.Close()

	var result []model.Category
	for rows.Next() {
		var (
			t        model.Tracker
			name     sql.NullString
			emoji    sql.NullString
			catID    uint
			catTitle string
		)
		if err := rows.Scan(&t.ID, &name, &t.Color, &emoji, &t.Schedule, &t.DaysString, &t.CategoryID, &catID, &catTitle); err != nil {
			s.log.Warn("skipping unreadable tracker row", zap.Error(err))
			continue
		}
		if !name.Valid || name.String == "" || !emoji.Valid || emoji.String == "" {
			s.log.Warn("skipping tracker with missing fields", zap.Int32("tracker_id", t.ID))
			continue
		}
		t.Name = name.String
		t.Emoji = emoji.String

		if len(result) == 0 || result[len(result)-1].ID != catID {
			result = append(result, model.Category{ID: catID, Title: catTitle})
		}
		last := &result[len(result)-1]
		last.Trackers = append(last.Trackers, t)
	}
	return result, rows.Err()
}

// SetQueryDate pins the live sectioned query to the calendar day of date.
// The change itself emits nothing; the consumer that switched days reloads.
func (s *TrackerStore) SetQueryDate(date time.Time) {
	s.live.setDate(date)
}

// Subscribe registers fn for the sectioned diff batches. Section ops come
// first in every batch and are computed against the pre-change section
// layout; item ops follow, addressed against the layout the section ops
// leave behind.
func (s *TrackerStore) Subscribe(fn func([]diff.Change)) (cancel func()) {
	return s.live.subs.Subscribe(fn)
}
