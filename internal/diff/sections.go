package diff

// Section is one titled group of a sectioned projection. Sections are
// matched across evaluations by Key.
type Section struct {
	Key   string
	Items []Item
}

// Item is one entry inside a Section, matched by ID.
type Item struct {
	ID          int32
	Fingerprint string
}

// Sections diffs two evaluations of a sectioned projection. Section deletes
// are reported against the pre-change section layout and section inserts
// against the post-change one; item ops come after and address the layout
// left by the section ops. Inserted sections implicitly carry their items,
// so no item ops are emitted inside them.
//
// Both projections must be sorted by Key with items sorted by ID, which is
// what the tracker live query produces. Under that ordering surviving
// sections and surviving items never swap places, so within-section moves
// cannot occur.
func Sections(old, new []Section) []Change {
	oldKeys := make(map[string]int, len(old))
	for i, s := range old {
		oldKeys[s.Key] = i
	}
	newKeys := make(map[string]int, len(new))
	for i, s := range new {
		newKeys[s.Key] = i
	}

	var buf ChangeBuffer
	buf.Begin()

	for i := len(old) - 1; i >= 0; i-- {
		if _, ok := newKeys[old[i].Key]; !ok {
			buf.Add(DeleteSection(i))
		}
	}
	for i, s := range new {
		if _, ok := oldKeys[s.Key]; !ok {
			buf.Add(InsertSection(i))
		}
	}

	for newIdx, s := range new {
		oldIdx, ok := oldKeys[s.Key]
		if !ok {
			continue
		}
		oldItems := old[oldIdx].Items
		oldByID := make(map[int32]Item, len(oldItems))
		for _, it := range oldItems {
			oldByID[it.ID] = it
		}
		newByID := make(map[int32]struct{}, len(s.Items))
		for _, it := range s.Items {
			newByID[it.ID] = struct{}{}
		}

		for i := len(oldItems) - 1; i >= 0; i-- {
			if _, ok := newByID[oldItems[i].ID]; !ok {
				buf.Add(Delete(IndexPath{Section: newIdx, Item: i}))
			}
		}
		for i, it := range s.Items {
			prev, existed := oldByID[it.ID]
			switch {
			case !existed:
				buf.Add(Insert(IndexPath{Section: newIdx, Item: i}))
			case prev.Fingerprint != it.Fingerprint:
				buf.Add(Update(IndexPath{Section: newIdx, Item: i}))
			}
		}
	}

	return buf.End()
}
