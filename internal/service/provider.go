package service

import (
	"time"

	"go.uber.org/zap"

	"habit-tracker/internal/model"
	"habit-tracker/internal/observer"
	"habit-tracker/internal/repository"
)

// Provider is the facade the presentation layer talks to. It wires the
// shared database session, the three entity stores and the observer
// multiplexers; everything is synchronous and nothing is retried. Construct
// it explicitly and pass it to consumers; there is no process-wide
// instance.
type Provider struct {
	db         *repository.DB
	categories *repository.CategoryStore
	trackers   *repository.TrackerStore
	records    *repository.RecordStore
	obs        *observer.DataObserver
	log        *zap.Logger
}

func NewProvider(db *repository.DB, lg *zap.Logger) *Provider {
	categories := repository.NewCategoryStore(db, lg)
	trackers := repository.NewTrackerStore(db, lg)
	records := repository.NewRecordStore(db, lg)
	obs := observer.NewDataObserver(
		observer.NewCategoriesObserver(categories),
		observer.NewTrackersObserver(trackers, records),
	)
	return &Provider{
		db:         db,
		categories: categories,
		trackers:   trackers,
		records:    records,
		obs:        obs,
		log:        lg,
	}
}

// Bootstrap preloads the seed data when the database is empty. Safe to call
// on every start.
func (p *Provider) Bootstrap(seedDemoData bool) error {
	if !seedDemoData {
		return nil
	}
	return repository.Seed(p.db, p.categories, p.trackers, p.log)
}

// Observer returns the single subscription point for all change
// notifications.
func (p *Provider) Observer() *observer.DataObserver {
	return p.obs
}

// Categories returns every category, title ascending, with trackers.
func (p *Provider) Categories() ([]model.Category, error) {
	return p.categories.List()
}

// CompletedRecords returns every stored completion record.
func (p *Provider) CompletedRecords() ([]model.Record, error) {
	return p.records.List()
}

// CompletedRecordsFor bulk-fetches the records of the given trackers.
func (p *Provider) CompletedRecordsFor(trackerIDs []int32) ([]model.Record, error) {
	return p.records.ListFor(trackerIDs)
}

// TrackersFor returns the trackers scheduled on the weekday of date.
func (p *Provider) TrackersFor(date time.Time) ([]model.Tracker, error) {
	return p.trackers.ForDate(date)
}

// CategoriesFor returns the sectioned projection for date: non-empty
// categories with their matching trackers.
func (p *Provider) CategoriesFor(date time.Time) ([]model.Category, error) {
	return p.trackers.GroupedByCategory(date)
}

// SetQueryDate pins the live tracker query to the calendar day of date.
func (p *Provider) SetQueryDate(date time.Time) {
	p.trackers.SetQueryDate(date)
}

// CreateTracker persists tracker under the named category.
func (p *Provider) CreateTracker(tracker model.Tracker, categoryTitle string) (*model.Tracker, error) {
	return p.trackers.Add(tracker, categoryTitle)
}

// AddRecord marks the record's tracker completed on its calendar day.
func (p *Provider) AddRecord(record model.Record) (*model.Record, error) {
	return p.records.Add(record)
}

// DeleteRecord removes the completion mark again.
func (p *Provider) DeleteRecord(record model.Record) error {
	return p.records.Delete(record)
}

// LookupRecord finds the completion record of a tracker for one calendar
// day, nil when absent.
func (p *Provider) LookupRecord(trackerID int32, date time.Time) (*model.Record, error) {
	return p.records.Lookup(trackerID, date)
}

// CreateCategory adds a category with the given title.
func (p *Provider) CreateCategory(title string) (*model.Category, error) {
	return p.categories.Add(title)
}

// RenameCategory changes a category title.
func (p *Provider) RenameCategory(category model.Category, newTitle string) error {
	return p.categories.Rename(category, newTitle)
}

// DeleteCategory removes a category and, by the cascade policy, its
// trackers and their records.
func (p *Provider) DeleteCategory(category model.Category) error {
	return p.categories.Delete(category)
}

// CategoryExists reports whether a category with this title is stored,
// ignoring case.
func (p *Provider) CategoryExists(title string) (bool, error) {
	return p.categories.Exists(title)
}

// Close tears the observers and the database session down.
func (p *Provider) Close() error {
	p.obs.Close()
	return p.db.Close()
}
