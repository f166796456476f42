package diff

// Replay applies a batch emitted for the old -> new transition to a copy of
// old, pulling inserted content out of new, and returns the result. A
// consumer holding its own list representation must follow the same
// application order; this is the reference for that contract and the
// harness behind the replay-correctness tests.
func Replay(old []Section, changes []Change, new []Section) []Section {
	out := make([]Section, len(old))
	for i, s := range old {
		out[i] = Section{Key: s.Key, Items: append([]Item(nil), s.Items...)}
	}

	for _, c := range changes {
		switch c.Op {
		case OpDeleteSection:
			out = append(out[:c.Section], out[c.Section+1:]...)
		case OpInsertSection:
			src := new[c.Section]
			inserted := Section{Key: src.Key, Items: append([]Item(nil), src.Items...)}
			out = append(out, Section{})
			copy(out[c.Section+1:], out[c.Section:])
			out[c.Section] = inserted
		case OpDelete:
			items := out[c.At.Section].Items
			out[c.At.Section].Items = append(items[:c.At.Item], items[c.At.Item+1:]...)
		case OpInsert:
			item := new[c.At.Section].Items[c.At.Item]
			out[c.At.Section].Items = insertItem(out[c.At.Section].Items, c.At.Item, item)
		case OpUpdate:
			out[c.At.Section].Items[c.At.Item] = new[c.At.Section].Items[c.At.Item]
		case OpMove:
			items := out[c.At.Section].Items
			item := items[c.At.Item]
			out[c.At.Section].Items = append(items[:c.At.Item], items[c.At.Item+1:]...)
			out[c.To.Section].Items = insertItem(out[c.To.Section].Items, c.To.Item, item)
		}
	}
	return out
}

// ReplayRows is Replay for a flat projection.
func ReplayRows(old []Row, changes []Change, new []Row) []Row {
	out := append([]Row(nil), old...)
	for _, c := range changes {
		switch c.Op {
		case OpDelete:
			out = append(out[:c.At.Item], out[c.At.Item+1:]...)
		case OpInsert:
			out = insertRow(out, c.At.Item, new[c.At.Item])
		case OpUpdate:
			out[c.At.Item] = new[c.At.Item]
		case OpMove:
			row := out[c.At.Item]
			out = append(out[:c.At.Item], out[c.At.Item+1:]...)
			out = insertRow(out, c.To.Item, row)
		}
	}
	return out
}

func insertItem(items []Item, at int, item Item) []Item {
	items = append(items, Item{})
	copy(items[at+1:], items[at:])
	items[at] = item
	return items
}

func insertRow(rows []Row, at int, row Row) []Row {
	rows = append(rows, Row{})
	copy(rows[at+1:], rows[at:])
	rows[at] = row
	return rows
}
