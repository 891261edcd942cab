package document

import "github.com/diffjson/diffjson/internal/accessor"

// Get walks path into doc segment by segment. Any missing key,
// out-of-range index, or segment-kind mismatch aborts the walk with
// ok=false; lookups on unknown paths are non-fatal by contract, since
// ignore lists may reference paths absent from either document.
func Get(doc interface{}, path accessor.Path) (interface{}, bool) {
	cur := doc
	for _, seg := range path {
		switch x := cur.(type) {
		case map[string]interface{}:
			if seg.IsIndex() {
				return nil, false
			}
			v, ok := x[seg.Key()]
			if !ok {
				return nil, false
			}
			cur = v
		case []interface{}:
			if !seg.IsIndex() {
				return nil, false
			}
			i := seg.Index()
			if i < 0 || i >= len(x) {
				return nil, false
			}
			cur = x[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

// Delete removes exactly one element when path fully resolves inside
// doc, and is a silent no-op otherwise, including for the empty path
// (the root itself cannot be deleted). Object deletion mutates the
// document in place; removing a sequence element rewrites the slice
// chain up to the root, so callers must keep the returned document.
func Delete(doc interface{}, path accessor.Path) interface{} {
	if len(path) == 0 {
		return doc
	}
	updated, _ := deleteIn(doc, path)
	return updated
}

func deleteIn(cur interface{}, path accessor.Path) (interface{}, bool) {
	seg := path[0]
	switch x := cur.(type) {
	case map[string]interface{}:
		if seg.IsIndex() {
			return cur, false
		}
		child, ok := x[seg.Key()]
		if !ok {
			return cur, false
		}
		if len(path) == 1 {
			delete(x, seg.Key())
			return cur, true
		}
		updated, ok := deleteIn(child, path[1:])
		if ok {
			x[seg.Key()] = updated
		}
		return cur, ok
	case []interface{}:
		if !seg.IsIndex() {
			return cur, false
		}
		i := seg.Index()
		if i < 0 || i >= len(x) {
			return cur, false
		}
		if len(path) == 1 {
			out := make([]interface{}, 0, len(x)-1)
			out = append(out, x[:i]...)
			out = append(out, x[i+1:]...)
			return out, true
		}
		updated, ok := deleteIn(x[i], path[1:])
		if ok {
			x[i] = updated
		}
		return cur, ok
	default:
		return cur, false
	}
}
