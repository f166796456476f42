package diff

import "sort"

// ChangeBuffer accumulates raw change events between Begin and End and
// flushes them as one batch in the order consumers must replay them:
// section deletes (descending), section inserts (ascending), item deletes
// (descending by path), item inserts (ascending), then moves in emission
// order and finally updates. An empty flush yields nil so callers can
// suppress zero-delta commits.
type ChangeBuffer struct {
	sectionDeletes []int
	sectionInserts []int
	deletes        []IndexPath
	inserts        []IndexPath
	moves          []Change
	updates        []IndexPath
}

func (b *ChangeBuffer) Begin() {
	b.sectionDeletes = nil
	b.sectionInserts = nil
	b.deletes = nil
	b.inserts = nil
	b.moves = nil
	b.updates = nil
}

func (b *ChangeBuffer) Add(c Change) {
	switch c.Op {
	case OpDeleteSection:
		b.sectionDeletes = append(b.sectionDeletes, c.Section)
	case OpInsertSection:
		b.sectionInserts = append(b.sectionInserts, c.Section)
	case OpDelete:
		b.deletes = append(b.deletes, c.At)
	case OpInsert:
		b.inserts = append(b.inserts, c.At)
	case OpMove:
		b.moves = append(b.moves, c)
	case OpUpdate:
		b.updates = append(b.updates, c.At)
	}
}

// End sorts the collected events into the canonical batch order and resets
// the buffer.
func (b *ChangeBuffer) End() []Change {
	sort.Sort(sort.Reverse(sort.IntSlice(b.sectionDeletes)))
	sort.Ints(b.sectionInserts)
	sort.Slice(b.deletes, func(i, j int) bool { return pathLess(b.deletes[j], b.deletes[i]) })
	sort.Slice(b.inserts, func(i, j int) bool { return pathLess(b.inserts[i], b.inserts[j]) })
	sort.Slice(b.updates, func(i, j int) bool { return pathLess(b.updates[i], b.updates[j]) })

	var out []Change
	for _, s := range b.sectionDeletes {
		out = append(out, DeleteSection(s))
	}
	for _, s := range b.sectionInserts {
		out = append(out, InsertSection(s))
	}
	for _, p := range b.deletes {
		out = append(out, Delete(p))
	}
	for _, p := range b.inserts {
		out = append(out, Insert(p))
	}
	out = append(out, b.moves...)
	for _, p := range b.updates {
		out = append(out, Update(p))
	}
	b.Begin()
	return out
}

func pathLess(a, b IndexPath) bool {
	if a.Section != b.Section {
		return a.Section < b.Section
	}
	return a.Item < b.Item
}
