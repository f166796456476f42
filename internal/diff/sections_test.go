package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sec(key string, ids ...int32) Section {
	s := Section{Key: key}
	for _, id := range ids {
		s.Items = append(s.Items, Item{ID: id, Fingerprint: "v1"})
	}
	return s
}

func TestSectionsNoChange(t *testing.T) {
	old := []Section{sec("Health", 1, 2), sec("Work", 3)}
	assert.Empty(t, Sections(old, old))
}

func TestSectionsFirstSection(t *testing.T) {
	changes := Sections(nil, []Section{sec("Work", 101)})

	// A brand new section carries its items; no item ops inside it.
	require.Len(t, changes, 1)
	assert.Equal(t, InsertSection(0), changes[0])
}

func TestSectionsSectionEmptiesOut(t *testing.T) {
	old := []Section{sec("Health", 1), sec("Work", 2)}
	new := []Section{sec("Work", 2)}

	changes := Sections(old, new)
	require.Len(t, changes, 1)
	assert.Equal(t, DeleteSection(0), changes[0])
}

func TestSectionsItemIntoExistingSection(t *testing.T) {
	old := []Section{sec("Work", 101)}
	new := []Section{sec("Work", 101, 102)}

	changes := Sections(old, new)
	require.Len(t, changes, 1)
	assert.Equal(t, Insert(IndexPath{Section: 0, Item: 1}), changes[0])
}

// Section ops are computed against the pre-change section layout and come
// first; item ops follow, addressed against the layout the section ops
// leave behind.
func TestSectionsOrdering(t *testing.T) {
	old := []Section{sec("A", 1, 2), sec("B", 5), sec("C", 7, 8)}
	new := []Section{sec("A", 1, 3), sec("C", 7), sec("D", 9)}

	changes := Sections(old, new)
	want := []Change{
		DeleteSection(1),
		InsertSection(2),
		Delete(IndexPath{Section: 1, Item: 1}),
		Delete(IndexPath{Section: 0, Item: 1}),
		Insert(IndexPath{Section: 0, Item: 1}),
	}
	assert.Equal(t, want, changes)
}

func TestSectionsUpdateKeepsPosition(t *testing.T) {
	old := []Section{{Key: "Work", Items: []Item{{ID: 101, Fingerprint: "v1"}}}}
	new := []Section{{Key: "Work", Items: []Item{{ID: 101, Fingerprint: "v2"}}}}

	changes := Sections(old, new)
	require.Len(t, changes, 1)
	assert.Equal(t, Update(IndexPath{Section: 0, Item: 0}), changes[0])
}

func TestSectionsReplayMatchesTarget(t *testing.T) {
	tests := []struct {
		name string
		old  []Section
		new  []Section
	}{
		{
			"section churn with item edits",
			[]Section{sec("A", 1, 2), sec("B", 5), sec("C", 7, 8)},
			[]Section{sec("A", 1, 3), sec("C", 7), sec("D", 9)},
		},
		{
			"all sections replaced",
			[]Section{sec("A", 1), sec("B", 2)},
			[]Section{sec("C", 3), sec("D", 4)},
		},
		{
			"section inserted in the middle",
			[]Section{sec("A", 1), sec("C", 3)},
			[]Section{sec("A", 1), sec("B", 2), sec("C", 3)},
		},
		{
			"emptied",
			[]Section{sec("A", 1)},
			nil,
		},
		{
			"items shifting between evaluations",
			[]Section{sec("A", 1, 2, 3), sec("B", 4)},
			[]Section{sec("A", 2, 5), sec("B", 4, 6)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changes := Sections(tt.old, tt.new)
			assert.Equal(t, tt.new, normalizeSections(Replay(tt.old, changes, tt.new)))
		})
	}
}

// Batches must be replayed in commit order; this drives a sequence of
// evaluations through Replay and checks the client projection converges on
// the final one.
func TestSectionsReplaySequence(t *testing.T) {
	states := [][]Section{
		nil,
		{sec("Work", 101)},
		{sec("Health", 201), sec("Work", 101)},
		{sec("Health", 201), sec("Work", 101, 102)},
		{sec("Health", 201, 202), sec("Work", 102)},
		{sec("Work", 102)},
	}

	var client []Section
	for i := 1; i < len(states); i++ {
		changes := Sections(states[i-1], states[i])
		client = Replay(client, changes, states[i])
	}
	assert.Equal(t, states[len(states)-1], normalizeSections(client))
}

func normalizeSections(sections []Section) []Section {
	if len(sections) == 0 {
		return nil
	}
	return sections
}
