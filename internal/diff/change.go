// Package diff turns two evaluations of a live query into the ordered batch
// of structural changes a list-bound consumer replays to catch up.
package diff

import "fmt"

// IndexPath addresses one item inside a sectioned projection.
type IndexPath struct {
	Section int
	Item    int
}

// Op enumerates the kinds of structural change a live query can report.
type Op int

const (
	OpInsert Op = iota
	OpDelete
	OpUpdate
	OpMove
	OpInsertSection
	OpDeleteSection
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpUpdate:
		return "update"
	case OpMove:
		return "move"
	case OpInsertSection:
		return "insertSection"
	case OpDeleteSection:
		return "deleteSection"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Change is one structural mutation relative to an ordered, sectioned
// projection. Item ops address At (plus To for moves); section ops carry
// only Section. A batch is stale once applied against any other projection
// state than the one it was computed from.
type Change struct {
	Op      Op
	At      IndexPath
	To      IndexPath
	Section int
}

func Insert(p IndexPath) Change        { return Change{Op: OpInsert, At: p} }
func Delete(p IndexPath) Change        { return Change{Op: OpDelete, At: p} }
func Update(p IndexPath) Change        { return Change{Op: OpUpdate, At: p} }
func Move(from, to IndexPath) Change   { return Change{Op: OpMove, At: from, To: to} }
func InsertSection(section int) Change { return Change{Op: OpInsertSection, Section: section} }
func DeleteSection(section int) Change { return Change{Op: OpDeleteSection, Section: section} }

func (c Change) String() string {
	switch c.Op {
	case OpMove:
		return fmt.Sprintf("move(%d,%d -> %d,%d)", c.At.Section, c.At.Item, c.To.Section, c.To.Item)
	case OpInsertSection, OpDeleteSection:
		return fmt.Sprintf("%s(%d)", c.Op, c.Section)
	default:
		return fmt.Sprintf("%s(%d,%d)", c.Op, c.At.Section, c.At.Item)
	}
}
