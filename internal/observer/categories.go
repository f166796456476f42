package observer

import "habit-tracker/internal/diff"

// CategoriesObserver republishes the category store's diff batches. A
// consumer picks one of two modes: structural (receives the positional
// batch and must replay every batch in order) or snapshot (receives a bare
// reload signal, for consumers whose own index space has diverged, e.g.
// while a text filter is active).
type CategoriesObserver struct {
	changes Hub[[]diff.Change]
	reloads Hub[struct{}]
	cancel  func()
}

func NewCategoriesObserver(categories BatchSource) *CategoriesObserver {
	o := &CategoriesObserver{}
	o.cancel = categories.Subscribe(o.forward)
	return o
}

func (o *CategoriesObserver) forward(changes []diff.Change) {
	o.changes.Publish(changes)
	o.reloads.Publish(struct{}{})
}

func (o *CategoriesObserver) SubscribeChanges(fn func([]diff.Change)) (cancel func()) {
	return o.changes.Subscribe(fn)
}

func (o *CategoriesObserver) SubscribeReload(fn func()) (cancel func()) {
	return o.reloads.Subscribe(func(struct{}) { fn() })
}

func (o *CategoriesObserver) Close() {
	o.cancel()
}
