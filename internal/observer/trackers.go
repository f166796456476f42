package observer

import "habit-tracker/internal/diff"

// TrackersObserver aggregates the sectioned tracker diffs and the
// per-record completion events into one subscription surface. The two
// channels stay separate: trackers are addressed by section and item,
// records by tracker id, and the two index spaces do not merge.
type TrackersObserver struct {
	trackers Hub[[]diff.Change]
	reloads  Hub[struct{}]
	records  Hub[RecordEvent]
	cancels  []func()
}

func NewTrackersObserver(trackers BatchSource, records RecordSource) *TrackersObserver {
	o := &TrackersObserver{}
	o.cancels = append(o.cancels,
		trackers.Subscribe(o.forwardTrackers),
		records.SubscribeRecords(o.forwardRecord),
	)
	return o
}

func (o *TrackersObserver) forwardTrackers(changes []diff.Change) {
	o.trackers.Publish(changes)
	o.reloads.Publish(struct{}{})
}

func (o *TrackersObserver) forwardRecord(ev RecordEvent) {
	o.records.Publish(ev)
}

func (o *TrackersObserver) SubscribeTrackers(fn func([]diff.Change)) (cancel func()) {
	return o.trackers.Subscribe(fn)
}

func (o *TrackersObserver) SubscribeReload(fn func()) (cancel func()) {
	return o.reloads.Subscribe(func(struct{}) { fn() })
}

func (o *TrackersObserver) SubscribeRecords(fn func(RecordEvent)) (cancel func()) {
	return o.records.Subscribe(fn)
}

func (o *TrackersObserver) Close() {
	for _, cancel := range o.cancels {
		cancel()
	}
}
