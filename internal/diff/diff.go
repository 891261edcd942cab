// Package diff adapts the external structural-diff engine into the
// categorized change buckets the report builder consumes. The engine
// itself is a black box: given two document trees it returns a flat
// edit script of insert/delete/update/move deltas keyed by
// slash-separated paths.
package diff

import (
	"github.com/qri-io/deepdiff"

	"github.com/diffjson/diffjson/internal/accessor"
)

// Change is one addition or removal at a path.
type Change struct {
	Path  accessor.Path
	Value interface{}
}

// ValueChange pairs the old and new values at a path.
type ValueChange struct {
	Path accessor.Path
	Old  interface{}
	New  interface{}
}

// Move records an element that changed position.
type Move struct {
	Path   accessor.Path
	Source accessor.Path
}

// Changes is the categorized result of comparing two documents.
// Insertions and deletions are split by the kind of their final path
// segment: a string key lands in the object bucket, an integer index
// in the sequence bucket.
type Changes struct {
	ObjectAdded     []Change
	SequenceAdded   []Change
	ObjectRemoved   []Change
	SequenceRemoved []Change
	Changed         []ValueChange
	Moved           []Move
}

// Empty reports whether the two documents compared structurally equal.
func (c Changes) Empty() bool {
	return len(c.ObjectAdded) == 0 &&
		len(c.SequenceAdded) == 0 &&
		len(c.ObjectRemoved) == 0 &&
		len(c.SequenceRemoved) == 0 &&
		len(c.Changed) == 0 &&
		len(c.Moved) == 0
}

// OrderOnly reports whether every recorded difference is a move of an
// element within its original parent. Under order-insensitive
// comparison such a result means the documents hold the same
// multisets and differ only in sequence ordering.
func (c Changes) OrderOnly() bool {
	if len(c.ObjectAdded) > 0 || len(c.SequenceAdded) > 0 ||
		len(c.ObjectRemoved) > 0 || len(c.SequenceRemoved) > 0 ||
		len(c.Changed) > 0 {
		return false
	}
	for _, m := range c.Moved {
		if !sameParent(m.Source, m.Path) {
			return false
		}
	}
	return true
}

// Compare diffs two documents. With orderInsensitive set the engine
// tracks moves, so reordered sequences surface in the Moved bucket
// instead of as positional value changes; without it sequence order
// is significant and reorders report as changes.
func Compare(a, b interface{}, orderInsensitive bool) (Changes, error) {
	var opts []deepdiff.DiffOption
	if orderInsensitive {
		opts = append(opts, func(cfg *deepdiff.DiffConfig) { cfg.MoveDeltas = true })
	}
	deltas, err := deepdiff.Diff(a, b, opts...)
	if err != nil {
		return Changes{}, err
	}
	return categorize(deltas), nil
}

// Stats computes diff statistics for two documents.
func Stats(a, b interface{}) (deepdiff.Stats, error) {
	st := &deepdiff.Stats{}
	_, err := deepdiff.Diff(a, b, deepdiff.OptionSetStats(st))
	return *st, err
}

// FormatStats renders engine statistics for terminal display.
func FormatStats(st deepdiff.Stats) string {
	return deepdiff.FormatPrettyStats(&st)
}

func categorize(deltas []*deepdiff.Delta) Changes {
	changedAt := map[string]bool{}
	for _, d := range deltas {
		if d.Type == deepdiff.DTUpdate {
			changedAt[d.Path] = true
		}
	}

	var c Changes
	for _, d := range deltas {
		path := accessor.FromPointer(d.Path)
		switch d.Type {
		case deepdiff.DTInsert:
			if terminalIsIndex(path) {
				c.SequenceAdded = append(c.SequenceAdded, Change{Path: path, Value: d.Value})
			} else {
				c.ObjectAdded = append(c.ObjectAdded, Change{Path: path, Value: d.Value})
			}
		case deepdiff.DTDelete:
			if terminalIsIndex(path) {
				c.SequenceRemoved = append(c.SequenceRemoved, Change{Path: path, Value: d.Value})
			} else {
				c.ObjectRemoved = append(c.ObjectRemoved, Change{Path: path, Value: d.Value})
			}
		case deepdiff.DTUpdate:
			c.Changed = append(c.Changed, ValueChange{Path: path, Old: d.SourceValue, New: d.Value})
		case deepdiff.DTMove:
			// a move is not reported when the value at that location
			// also changed
			if changedAt[d.Path] {
				continue
			}
			c.Moved = append(c.Moved, Move{Path: path, Source: accessor.FromPointer(d.SourcePath)})
		}
	}
	return c
}

func terminalIsIndex(p accessor.Path) bool {
	return len(p) > 0 && p[len(p)-1].IsIndex()
}

func sameParent(a, b accessor.Path) bool {
	if len(a) != len(b) || len(a) == 0 {
		return false
	}
	return a[:len(a)-1].String() == b[:len(b)-1].String()
}
