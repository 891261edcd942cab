// Package compare orchestrates document-pair and directory-pair
// comparisons: loading, ignore-path stripping, diffing, report
// rendering, and pass/fail aggregation.
package compare

import "github.com/diffjson/diffjson/internal/report"

// Outcome classifies one document-pair comparison.
type Outcome string

const (
	// OK means no differences remained after ignoring fields.
	OK Outcome = "OK"
	// Bad means structural differences were found.
	Bad Outcome = "BAD"
	// FileError means a document failed to load or parse.
	FileError Outcome = "FILE_ERROR"
)

// Options configures a comparison run.
type Options struct {
	// IgnorePaths holds raw accessor strings whose subtrees are
	// stripped from both documents before diffing. The CLI unions
	// flag and environment sources before handing them over.
	IgnorePaths []string
	// MaxItems truncates the flattened report; 0 means unlimited.
	MaxItems int
	// Ordered makes sequence order significant. The default
	// (order-insensitive) treats same-multiset reorders as equal.
	Ordered bool
	// Flat renders one line per change instead of the nested tree.
	Flat bool
	// Verbose prints the full report for differing pairs.
	Verbose bool
	// JSON emits machine-readable results instead of text lines.
	JSON bool
	// Color selects report colorization.
	Color report.ColorMode
}

// Result is the outcome of a single pair plus its rendered report,
// when one was produced.
type Result struct {
	Outcome Outcome `json:"outcome"`
	Old     string  `json:"old,omitempty"`
	New     string  `json:"new,omitempty"`
	Report  string  `json:"report,omitempty"`
}

// Pairing is the comparison plan for one invocation.
type Pairing struct {
	// Pairs holds (old, new) document path tuples in sorted name
	// order.
	Pairs [][2]string
	// Missing names documents present only in the old directory.
	Missing []string
	// Extra names documents present only in the new directory.
	Extra []string
	// DirMode is set when both inputs were directories.
	DirMode bool
}

// RunResult aggregates a directory comparison by filename.
type RunResult struct {
	OK      []string `json:"ok"`
	Bad     []string `json:"bad"`
	Errored []string `json:"errored"`
	Missing []string `json:"missing"`
	Extra   []string `json:"extra"`
}

// Failed reports whether the run must exit nonzero.
func (r RunResult) Failed() bool {
	return len(r.Bad) > 0 || len(r.Errored) > 0 || len(r.Missing) > 0 || len(r.Extra) > 0
}
