package diff

// Row is one entry of a flat, ordered projection. ID is the stable identity
// used to match entries across evaluations; Fingerprint covers the visible
// content, so a rename surfaces as an update even when the row also moved.
type Row struct {
	ID          uint
	Fingerprint string
}

// Rows diffs two evaluations of a flat projection (everything lives in
// section 0) and returns the replayable batch. Deletes address the old
// index space, inserts the new one; moves are sequentialized so a consumer
// applying the batch top to bottom ends up with exactly the new order.
func Rows(old, new []Row) []Change {
	oldIndex := make(map[uint]int, len(old))
	for i, r := range old {
		oldIndex[r.ID] = i
	}
	newIndex := make(map[uint]int, len(new))
	for i, r := range new {
		newIndex[r.ID] = i
	}

	var buf ChangeBuffer
	buf.Begin()

	cur := make([]uint, len(old))
	for i, r := range old {
		cur[i] = r.ID
	}
	for i := len(old) - 1; i >= 0; i-- {
		if _, ok := newIndex[old[i].ID]; !ok {
			buf.Add(Delete(IndexPath{Section: 0, Item: i}))
			cur = append(cur[:i], cur[i+1:]...)
		}
	}
	for i, r := range new {
		if _, ok := oldIndex[r.ID]; !ok {
			buf.Add(Insert(IndexPath{Section: 0, Item: i}))
			cur = insertID(cur, i, r.ID)
		}
	}

	// cur is now a permutation of new; walk it into place so each emitted
	// move is valid against the state left by the previous one.
	for t := range new {
		if cur[t] == new[t].ID {
			continue
		}
		f := t + 1
		for ; f < len(cur); f++ {
			if cur[f] == new[t].ID {
				break
			}
		}
		buf.Add(Move(IndexPath{Section: 0, Item: f}, IndexPath{Section: 0, Item: t}))
		id := cur[f]
		cur = append(cur[:f], cur[f+1:]...)
		cur = insertID(cur, t, id)
	}

	for i, r := range new {
		if j, ok := oldIndex[r.ID]; ok && old[j].Fingerprint != r.Fingerprint {
			buf.Add(Update(IndexPath{Section: 0, Item: i}))
		}
	}

	return buf.End()
}

func insertID(ids []uint, at int, id uint) []uint {
	ids = append(ids, 0)
	copy(ids[at+1:], ids[at:])
	ids[at] = id
	return ids
}
