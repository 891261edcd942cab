// Package report turns categorized diff results into human-scannable
// text: a flat ordered entry list, one-line value previews, and a
// nested tree grouped by shared path prefixes.
package report

import (
	"fmt"
	"sort"

	"github.com/diffjson/diffjson/internal/accessor"
	"github.com/diffjson/diffjson/internal/diff"
)

// Tag classifies one report entry.
type Tag uint8

const (
	TagNew Tag = iota
	TagRemoved
	TagMoved
)

// Leader returns the two-character line prefix for entries of this
// tag.
func (t Tag) Leader() string {
	switch t {
	case TagNew:
		return "+ "
	case TagRemoved:
		return "- "
	default:
		return "  "
	}
}

// Entry is one flattened change at a path. Source is set only for
// moves and names where the element came from.
type Entry struct {
	Path   accessor.Path
	Tag    Tag
	Value  interface{}
	Source accessor.Path
}

// Flatten converts categorized changes into one ordered entry list.
// Buckets are visited in a fixed order: additions (object then
// sequence), removals (object then sequence), value changes, then
// moves. Paths are sorted inside each bucket so output is
// deterministic. A value change expands into two entries at the same
// path: the removed old value, then the new one.
//
// When maxItems > 0 and the total exceeds it, the surplus entries are
// dropped and a note with the exact remaining count is returned;
// maxItems = 0 means unlimited.
func Flatten(c diff.Changes, maxItems int) ([]Entry, string) {
	var entries []Entry

	for _, ch := range sortedChanges(c.ObjectAdded) {
		entries = append(entries, Entry{Path: ch.Path, Tag: TagNew, Value: ch.Value})
	}
	for _, ch := range sortedChanges(c.SequenceAdded) {
		entries = append(entries, Entry{Path: ch.Path, Tag: TagNew, Value: ch.Value})
	}
	for _, ch := range sortedChanges(c.ObjectRemoved) {
		entries = append(entries, Entry{Path: ch.Path, Tag: TagRemoved, Value: ch.Value})
	}
	for _, ch := range sortedChanges(c.SequenceRemoved) {
		entries = append(entries, Entry{Path: ch.Path, Tag: TagRemoved, Value: ch.Value})
	}
	for _, vc := range sortedValueChanges(c.Changed) {
		entries = append(entries,
			Entry{Path: vc.Path, Tag: TagRemoved, Value: vc.Old},
			Entry{Path: vc.Path, Tag: TagNew, Value: vc.New})
	}
	for _, mv := range sortedMoves(c.Moved) {
		entries = append(entries, Entry{Path: mv.Path, Tag: TagMoved, Source: mv.Source})
	}

	if maxItems > 0 && len(entries) > maxItems {
		dropped := len(entries) - maxItems
		note := fmt.Sprintf("...(%d more %s)", dropped, noun(dropped, "item"))
		return entries[:maxItems], note
	}
	return entries, ""
}

func sortedChanges(in []diff.Change) []diff.Change {
	out := append([]diff.Change(nil), in...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Path.String() < out[j].Path.String() })
	return out
}

func sortedValueChanges(in []diff.ValueChange) []diff.ValueChange {
	out := append([]diff.ValueChange(nil), in...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Path.String() < out[j].Path.String() })
	return out
}

func sortedMoves(in []diff.Move) []diff.Move {
	out := append([]diff.Move(nil), in...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Path.String() < out[j].Path.String() })
	return out
}
