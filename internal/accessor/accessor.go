// Package accessor implements the bracketed accessor-path
// mini-language used to address locations inside nested documents,
// e.g. ['metadata']['labels'][0].
package accessor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Segment is one step into a nested document: a string key into an
// object, or an integer index into a sequence.
type Segment struct {
	key     string
	idx     int
	numeric bool
}

// Key returns a segment addressing an object key.
func Key(k string) Segment { return Segment{key: k} }

// Index returns a segment addressing a sequence position.
func Index(i int) Segment { return Segment{idx: i, numeric: true} }

// IsIndex reports whether the segment addresses a sequence position.
func (s Segment) IsIndex() bool { return s.numeric }

// Index returns the sequence position; only meaningful when IsIndex.
func (s Segment) Index() int { return s.idx }

// Key returns the object key; only meaningful when !IsIndex.
func (s Segment) Key() string { return s.key }

// String renders the segment in bracketed accessor form.
func (s Segment) String() string {
	if s.numeric {
		return fmt.Sprintf("[%d]", s.idx)
	}
	return fmt.Sprintf("['%s']", s.key)
}

// Path is an ordered root-to-leaf sequence of segments. The empty
// path addresses the document root.
type Path []Segment

// String renders the path by re-bracketing each segment.
func (p Path) String() string {
	var sb strings.Builder
	for _, s := range p {
		sb.WriteString(s.String())
	}
	return sb.String()
}

var bracketGroup = regexp.MustCompile(`\[([^\]]+)\]`)

// Parse scans s for bracketed segments. Bracket content that parses
// as a base-10 integer becomes an index segment; anything else
// becomes a string key with one layer of surrounding quotes stripped.
// Text outside brackets, including a leading "root" sentinel, is
// ignored, and malformed brackets are simply skipped. Parse never
// fails; unparseable input yields a shorter path by contract.
func Parse(s string) Path {
	var p Path
	for _, m := range bracketGroup.FindAllStringSubmatch(s, -1) {
		part := m[1]
		if i, err := strconv.Atoi(part); err == nil {
			p = append(p, Index(i))
			continue
		}
		p = append(p, Key(stripQuotes(part)))
	}
	return p
}

// FromPointer converts a slash-separated engine path such as
// "/spec/containers/0" into an accessor path. An empty or bare "/"
// pointer denotes the document root.
func FromPointer(ptr string) Path {
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return nil
	}
	parts := strings.Split(ptr, "/")
	p := make(Path, 0, len(parts))
	for _, part := range parts {
		if i, err := strconv.Atoi(part); err == nil {
			p = append(p, Index(i))
			continue
		}
		p = append(p, Key(part))
	}
	return p
}

func stripQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	if isQuote(s[0]) && isQuote(s[len(s)-1]) {
		return s[1 : len(s)-1]
	}
	return s
}

func isQuote(b byte) bool { return b == '\'' || b == '"' }
