package report

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diffjson/diffjson/internal/accessor"
	"github.com/diffjson/diffjson/internal/diff"
)

func TestFlattenBucketOrder(t *testing.T) {
	c := diff.Changes{
		ObjectAdded:     []diff.Change{{Path: accessor.Parse("['oa']"), Value: 1}},
		SequenceAdded:   []diff.Change{{Path: accessor.Parse("['sa'][0]"), Value: 2}},
		ObjectRemoved:   []diff.Change{{Path: accessor.Parse("['or']"), Value: 3}},
		SequenceRemoved: []diff.Change{{Path: accessor.Parse("['sr'][1]"), Value: 4}},
		Changed:         []diff.ValueChange{{Path: accessor.Parse("['vc']"), Old: 5, New: 6}},
		Moved:           []diff.Move{{Path: accessor.Parse("['mv'][2]"), Source: accessor.Parse("['mv'][0]")}},
	}

	entries, note := Flatten(c, 0)
	require.Empty(t, note)

	var got []string
	for _, e := range entries {
		got = append(got, fmt.Sprintf("%d%s", e.Tag, e.Path))
	}
	want := []string{
		fmt.Sprintf("%d['oa']", TagNew),
		fmt.Sprintf("%d['sa'][0]", TagNew),
		fmt.Sprintf("%d['or']", TagRemoved),
		fmt.Sprintf("%d['sr'][1]", TagRemoved),
		fmt.Sprintf("%d['vc']", TagRemoved),
		fmt.Sprintf("%d['vc']", TagNew),
		fmt.Sprintf("%d['mv'][2]", TagMoved),
	}
	assert.Equal(t, want, got)
}

// A changed scalar expands to exactly two entries at the same path:
// removed old, then new, in that order.
func TestFlattenValueChangeExpansion(t *testing.T) {
	c := diff.Changes{
		Changed: []diff.ValueChange{{
			Path: accessor.Parse("['x']"),
			Old:  float64(1),
			New:  float64(2),
		}},
	}

	entries, _ := Flatten(c, 0)
	require.Len(t, entries, 2)

	assert.Equal(t, "['x']", entries[0].Path.String())
	assert.Equal(t, TagRemoved, entries[0].Tag)
	assert.Equal(t, "1", Preview(entries[0].Value, DefaultPreviewLimit))

	assert.Equal(t, "['x']", entries[1].Path.String())
	assert.Equal(t, TagNew, entries[1].Tag)
	assert.Equal(t, "2", Preview(entries[1].Value, DefaultPreviewLimit))
}

func TestFlattenTruncation(t *testing.T) {
	var c diff.Changes
	for i := 0; i < 150; i++ {
		c.ObjectAdded = append(c.ObjectAdded, diff.Change{
			Path:  accessor.Path{accessor.Key(fmt.Sprintf("k%03d", i))},
			Value: i,
		})
	}

	entries, note := Flatten(c, 100)
	assert.Len(t, entries, 100)
	assert.Equal(t, "...(50 more items)", note)
}

func TestFlattenTruncationSingular(t *testing.T) {
	var c diff.Changes
	for i := 0; i < 5; i++ {
		c.ObjectAdded = append(c.ObjectAdded, diff.Change{
			Path:  accessor.Path{accessor.Key(fmt.Sprintf("k%d", i))},
			Value: i,
		})
	}

	entries, note := Flatten(c, 4)
	assert.Len(t, entries, 4)
	assert.Equal(t, "...(1 more item)", note)
}

func TestFlattenUnlimited(t *testing.T) {
	var c diff.Changes
	for i := 0; i < 150; i++ {
		c.ObjectAdded = append(c.ObjectAdded, diff.Change{
			Path:  accessor.Path{accessor.Key(fmt.Sprintf("k%03d", i))},
			Value: i,
		})
	}

	entries, note := Flatten(c, 0)
	assert.Len(t, entries, 150)
	assert.Empty(t, note)
}

func TestFlattenSortsWithinBuckets(t *testing.T) {
	c := diff.Changes{
		ObjectAdded: []diff.Change{
			{Path: accessor.Parse("['zz']")},
			{Path: accessor.Parse("['aa']")},
			{Path: accessor.Parse("['mm']")},
		},
	}

	entries, _ := Flatten(c, 0)
	require.Len(t, entries, 3)
	assert.Equal(t, "['aa']", entries[0].Path.String())
	assert.Equal(t, "['mm']", entries[1].Path.String())
	assert.Equal(t, "['zz']", entries[2].Path.String())
}
