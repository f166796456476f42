package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowsFirstInsert(t *testing.T) {
	changes := Rows(nil, []Row{{ID: 1, Fingerprint: "Health"}})

	// One item into an empty flat list: a single insert, no section ops.
	require.Len(t, changes, 1)
	assert.Equal(t, Insert(IndexPath{Section: 0, Item: 0}), changes[0])
}

func TestRowsNoChange(t *testing.T) {
	rows := []Row{{ID: 1, Fingerprint: "a"}, {ID: 2, Fingerprint: "b"}}
	assert.Empty(t, Rows(rows, rows))
}

func TestRowsInsertSorted(t *testing.T) {
	old := []Row{{ID: 1, Fingerprint: "Health"}, {ID: 2, Fingerprint: "Work"}}
	new := []Row{{ID: 1, Fingerprint: "Health"}, {ID: 3, Fingerprint: "Hobby"}, {ID: 2, Fingerprint: "Work"}}

	changes := Rows(old, new)
	require.Len(t, changes, 1)
	assert.Equal(t, Insert(IndexPath{Section: 0, Item: 1}), changes[0])
}

func TestRowsDeleteDescending(t *testing.T) {
	old := []Row{{ID: 1, Fingerprint: "a"}, {ID: 2, Fingerprint: "b"}, {ID: 3, Fingerprint: "c"}}
	new := []Row{{ID: 2, Fingerprint: "b"}}

	changes := Rows(old, new)
	require.Len(t, changes, 2)
	assert.Equal(t, Delete(IndexPath{Section: 0, Item: 2}), changes[0])
	assert.Equal(t, Delete(IndexPath{Section: 0, Item: 0}), changes[1])
}

func TestRowsRenameBecomesMoveAndUpdate(t *testing.T) {
	// Rename "c" to "0c": same row id, new content, new sorted position.
	old := []Row{{ID: 1, Fingerprint: "a"}, {ID: 2, Fingerprint: "b"}, {ID: 3, Fingerprint: "c"}}
	new := []Row{{ID: 3, Fingerprint: "0c"}, {ID: 1, Fingerprint: "a"}, {ID: 2, Fingerprint: "b"}}

	changes := Rows(old, new)
	require.Len(t, changes, 2)
	assert.Equal(t, Move(IndexPath{Section: 0, Item: 2}, IndexPath{Section: 0, Item: 0}), changes[0])
	assert.Equal(t, Update(IndexPath{Section: 0, Item: 0}), changes[1])
}

func TestRowsRenameInPlace(t *testing.T) {
	old := []Row{{ID: 1, Fingerprint: "a"}, {ID: 2, Fingerprint: "b"}}
	new := []Row{{ID: 1, Fingerprint: "april"}, {ID: 2, Fingerprint: "b"}}

	changes := Rows(old, new)
	require.Len(t, changes, 1)
	assert.Equal(t, Update(IndexPath{Section: 0, Item: 0}), changes[0])
}

func TestRowsReplayMatchesTarget(t *testing.T) {
	tests := []struct {
		name string
		old  []Row
		new  []Row
	}{
		{
			"mixed insert delete",
			[]Row{{1, "a"}, {2, "b"}, {3, "c"}},
			[]Row{{2, "b"}, {4, "d"}, {5, "e"}},
		},
		{
			"rename with reorder",
			[]Row{{1, "a"}, {2, "b"}, {3, "c"}},
			[]Row{{3, "0c"}, {1, "a"}, {2, "b"}},
		},
		{
			"everything replaced",
			[]Row{{1, "a"}, {2, "b"}},
			[]Row{{3, "x"}, {4, "y"}},
		},
		{
			"emptied",
			[]Row{{1, "a"}, {2, "b"}},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changes := Rows(tt.old, tt.new)
			assert.Equal(t, tt.new, normalizeRows(ReplayRows(tt.old, changes, tt.new)))
		})
	}
}

// TestRowsReplaySequence replays the batches of a whole mutation sequence,
// batch by batch, against a client-side list that starts empty. After the
// last batch the list must equal the final evaluation.
func TestRowsReplaySequence(t *testing.T) {
	states := [][]Row{
		nil,
		{{1, "Health"}},
		{{1, "Health"}, {2, "Work"}},
		{{3, "Errands"}, {1, "Health"}, {2, "Work"}},
		{{3, "Errands"}, {2, "Work"}},
		{{2, "Chores"}, {3, "Errands"}},
	}

	var client []Row
	for i := 1; i < len(states); i++ {
		changes := Rows(states[i-1], states[i])
		client = ReplayRows(client, changes, states[i])
	}
	assert.Equal(t, states[len(states)-1], normalizeRows(client))
}

func normalizeRows(rows []Row) []Row {
	if len(rows) == 0 {
		return nil
	}
	return rows
}
