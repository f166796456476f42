package repository

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"habit-tracker/internal/diff"
	"habit-tracker/internal/model"
	"habit-tracker/internal/observer"
)

// RecordStore persists completion records. Changes are published one at a
// time with the affected record instead of as positional batches: a record
// is addressed by tracker id, not by a row in some sorted list.
type RecordStore struct {
	db   *DB
	log  *zap.Logger
	subs observer.Hub[observer.RecordEvent]
}

func NewRecordStore(db *DB, lg *zap.Logger) *RecordStore {
	return &RecordStore{db: db, log: lg}
}

// Add stores a completion mark for the calendar day of record.Date. At most
// one record may exist per tracker and day; a second insert is rejected
// here instead of trusting every caller to check first.
func (s *RecordStore) Add(record model.Record) (*model.Record, error) {
	record.Day = model.DayKey(record.Date)

	existing, err := s.Lookup(record.TrackerID, record.Date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateRecord
	}

	err = s.db.Commit(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("create record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.subs.Publish(observer.RecordEvent{Record: record, Kind: diff.OpInsert})
	return &record, nil
}

// Delete removes the record for the tracker and calendar day of
// record.Date. Deleting a record that was never stored is an error, not a
// no-op.
func (s *RecordStore) Delete(record model.Record) error {
	stored, err := s.Lookup(record.TrackerID, record.Date)
	if err != nil {
		return err
	}
	if stored == nil {
		return ErrRecordNotFound
	}

	err = s.db.Commit(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Record{}, stored.ID).Error; err != nil {
			return fmt.Errorf("delete record: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.subs.Publish(observer.RecordEvent{Record: *stored, Kind: diff.OpDelete})
	return nil
}

// Lookup finds the record for the calendar day of date. Returns nil without
// error when there is none.
func (s *RecordStore) Lookup(trackerID int32, date time.Time) (*model.Record, error) {
	var record model.Record
	err := s.db.Session().
		Where("tracker_id = ? AND day = ?", trackerID, model.DayKey(date)).
		First(&record).Error
	switch {
	case err == nil:
		return &record, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	default:
		return nil, fmt.Errorf("find record: %w", err)
	}
}

// List returns every stored record.
func (s *RecordStore) List() ([]model.Record, error) {
	var records []model.Record
	if err := s.db.Session().Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

// ListFor bulk-fetches the records of the given trackers, for counting
// completions without one query per tracker.
func (s *RecordStore) ListFor(trackerIDs []int32) ([]model.Record, error) {
	if len(trackerIDs) == 0 {
		return nil, nil
	}
	var records []model.Record
	if err := s.db.Session().Where("tracker_id IN ?", trackerIDs).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list records for trackers: %w", err)
	}
	return records, nil
}

// SubscribeRecords registers fn for per-mutation record events, delivered
// in commit order on the committing goroutine.
func (s *RecordStore) SubscribeRecords(fn func(observer.RecordEvent)) (cancel func()) {
	return s.subs.Subscribe(fn)
}
