// Package observer fans change notifications out from the stores to any
// number of higher-level consumers.
package observer

import "sort"

// Hub is a registry of callbacks for one notification channel. Each store
// publishes through a Hub instead of holding a single delegate, so two
// screens bound to the same list cannot silently steal each other's
// subscription.
type Hub[T any] struct {
	next int
	fns  map[int]func(T)
}

// Subscribe registers fn and returns a func that cancels the subscription.
func (h *Hub[T]) Subscribe(fn func(T)) (cancel func()) {
	if h.fns == nil {
		h.fns = make(map[int]func(T))
	}
	id := h.next
	h.next++
	h.fns[id] = fn
	return func() { delete(h.fns, id) }
}

// Publish delivers v to every subscriber in subscription order, on the
// caller's goroutine.
func (h *Hub[T]) Publish(v T) {
	ids := make([]int, 0, len(h.fns))
	for id := range h.fns {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := h.fns[id]; ok {
			fn(v)
		}
	}
}
