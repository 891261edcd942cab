package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ColorMode selects report colorization. It is threaded explicitly
// into each renderer; the package-global color switch is never
// touched.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ParseColorMode maps a --color flag value onto a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("unknown color mode %q (want auto, always or never)", s)
}

func (m ColorMode) enabled() bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return !color.NoColor
	}
}

// Paint returns a sprint function for the given attribute honoring
// the mode, for callers outside the report renderer that colorize
// their own lines.
func (m ColorMode) Paint(attr color.Attribute) func(a ...interface{}) string {
	c := color.New(attr)
	if m.enabled() {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint
}

// Renderer writes flattened or nested reports.
type Renderer struct {
	colors map[Tag]func(a ...interface{}) string
	limit  int
}

// NewRenderer builds a renderer with the given color mode and value
// preview limit (0 falls back to DefaultPreviewLimit).
func NewRenderer(mode ColorMode, previewLimit int) *Renderer {
	if previewLimit <= 0 {
		previewLimit = DefaultPreviewLimit
	}
	return &Renderer{
		colors: map[Tag]func(a ...interface{}) string{
			TagNew:     mode.Paint(color.FgGreen),
			TagRemoved: mode.Paint(color.FgRed),
			TagMoved:   mode.Paint(color.FgCyan),
		},
		limit: previewLimit,
	}
}

func (r *Renderer) paint(t Tag, s string) string { return r.colors[t](s) }

func (r *Renderer) entryText(e Entry) string {
	if e.Tag == TagMoved {
		return "moved from " + e.Source.String()
	}
	return Preview(e.Value, r.limit)
}

// Flat prints one line per entry: leader, fully bracketed path, and
// preview, colorized by tag. The truncation note, if any, trails the
// entries.
func (r *Renderer) Flat(w io.Writer, entries []Entry, note string) {
	for _, e := range entries {
		fmt.Fprintln(w, r.paint(e.Tag, e.Tag.Leader()+e.Path.String()+": "+r.entryText(e)))
	}
	if note != "" {
		fmt.Fprintln(w, note)
	}
}

// Tree prints the nested report. A chain of single-child branches
// ending in a lone entry collapses onto one line colorized by that
// entry's tag; everything else prints one key per level with
// two-space indentation, entries carrying +/-/space leaders.
func (r *Renderer) Tree(w io.Writer, root *Node, note string) {
	for _, e := range root.Entries {
		fmt.Fprintln(w, r.paint(e.Tag, e.Tag.Leader()+r.entryText(e)))
	}
	for _, child := range root.Children() {
		r.renderNode(w, child, 0)
	}
	if note != "" {
		fmt.Fprintln(w, note)
	}
}

func (r *Renderer) renderNode(w io.Writer, node *Node, depth int) {
	indent := strings.Repeat("  ", depth)

	// walk the single-child chain below node, accumulating the
	// collapsed key line as we go
	key := node.Title
	tail := node
	for next := tail.uniqueChild(); next != nil; next = tail.uniqueChild() {
		key += next.Title
		tail = next
	}

	if len(tail.children) == 0 && len(tail.Entries) == 1 {
		e := tail.Entries[0]
		fmt.Fprintln(w, indent+r.paint(e.Tag, e.Tag.Leader()+key+": "+r.entryText(e)))
		return
	}

	fmt.Fprintln(w, indent+key)
	for _, e := range tail.Entries {
		fmt.Fprintln(w, indent+"  "+r.paint(e.Tag, e.Tag.Leader()+r.entryText(e)))
	}
	for _, child := range tail.children {
		r.renderNode(w, child, depth+1)
	}
}
