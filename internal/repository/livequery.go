package repository

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"habit-tracker/internal/diff"
	"habit-tracker/internal/model"
	"habit-tracker/internal/observer"
)

// categoryLiveQuery keeps the last evaluation of the title-sorted category
// list and publishes the structural delta after each commit. Rows are
// matched by database id, so a rename comes out as a move plus update
// instead of a delete/insert pair.
type categoryLiveQuery struct {
	store *CategoryStore
	rows  []diff.Row
	subs  observer.Hub[[]diff.Change]
}

func newCategoryLiveQuery(store *CategoryStore) *categoryLiveQuery {
	q := &categoryLiveQuery{store: store}
	q.rows = q.snapshot()
	return q
}

func (q *categoryLiveQuery) snapshot() []diff.Row {
	var categories []model.Category
	if err := q.store.db.Session().Order("title ASC").Find(&categories).Error; err != nil {
		q.store.log.Error("category live query fetch failed", zap.Error(err))
		return q.rows
	}
	rows := make([]diff.Row, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, diff.Row{ID: c.ID, Fingerprint: c.Title})
	}
	return rows
}

func (q *categoryLiveQuery) refresh() {
	rows := q.snapshot()
	changes := diff.Rows(q.rows, rows)
	q.rows = rows
	// A commit that did not touch this projection produces an empty batch,
	// which is suppressed here, not forwarded.
	if len(changes) == 0 {
		return
	}
	q.subs.Publish(changes)
}

// trackerLiveQuery keeps the last evaluation of the sectioned projection
// (non-empty categories for the query date, trackers grouped inside) and
// publishes the sectioned diff batch after each commit.
type trackerLiveQuery struct {
	store    *TrackerStore
	date     time.Time
	sections []diff.Section
	subs     observer.Hub[[]diff.Change]
}

func newTrackerLiveQuery(store *TrackerStore, date time.Time) *trackerLiveQuery {
	q := &trackerLiveQuery{store: store, date: date}
	q.sections = q.snapshot()
	return q
}

func (q *trackerLiveQuery) snapshot() []diff.Section {
	grouped, err := q.store.GroupedByCategory(q.date)
	if err != nil {
		q.store.log.Error("tracker live query fetch failed", zap.Error(err))
		return q.sections
	}
	sections := make([]diff.Section, 0, len(grouped))
	for _, c := range grouped {
		sec := diff.Section{Key: c.Title}
		for _, t := range c.Trackers {
			sec.Items = append(sec.Items, diff.Item{ID: t.ID, Fingerprint: trackerFingerprint(t)})
		}
		sections = append(sections, sec)
	}
	return sections
}

// setDate re-baselines the projection without emitting: switching days is a
// consumer-driven full reload, not a structural delta.
func (q *trackerLiveQuery) setDate(date time.Time) {
	q.date = date
	q.sections = q.snapshot()
}

func (q *trackerLiveQuery) refresh() {
	sections := q.snapshot()
	changes := diff.Sections(q.sections, sections)
	q.sections = sections
	if len(changes) == 0 {
		return
	}
	q.subs.Publish(changes)
}

func trackerFingerprint(t model.Tracker) string {
	return fmt.Sprintf("%s|%s|%s|%d", t.Name, t.Emoji, t.Color, t.Schedule)
}
