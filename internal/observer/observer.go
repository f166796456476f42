package observer

import (
	"habit-tracker/internal/diff"
	"habit-tracker/internal/model"
)

// RecordEvent pairs one mutated record with what happened to it. Record
// changes are consumed one at a time by a toggle, not as positional
// batches, so they travel outside the diff index space.
type RecordEvent struct {
	Record model.Record
	Kind   diff.Op
}

// BatchSource is a store whose live query publishes positional diff batches.
type BatchSource interface {
	Subscribe(fn func([]diff.Change)) (cancel func())
}

// RecordSource is a store that publishes one record change at a time.
type RecordSource interface {
	SubscribeRecords(fn func(RecordEvent)) (cancel func())
}
