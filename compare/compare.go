package compare

import (
	"strings"

	"github.com/diffjson/diffjson/internal/accessor"
	"github.com/diffjson/diffjson/internal/diff"
	"github.com/diffjson/diffjson/internal/document"
	"github.com/diffjson/diffjson/internal/report"
)

// Pair compares the documents at oldPath and newPath under opts.
// Ignored paths are deleted from both sides before diffing so that a
// field present on only one side cannot register as an addition or
// removal.
func Pair(oldPath, newPath string, opts Options) Result {
	result := Result{Old: oldPath, New: newPath}

	oldDoc, err := document.Load(oldPath)
	if err != nil {
		result.Outcome = FileError
		return result
	}
	newDoc, err := document.Load(newPath)
	if err != nil {
		result.Outcome = FileError
		return result
	}

	for _, raw := range opts.IgnorePaths {
		path := accessor.Parse(raw)
		oldDoc = document.Delete(oldDoc, path)
		newDoc = document.Delete(newDoc, path)
	}

	changes, err := diff.Compare(oldDoc, newDoc, !opts.Ordered)
	if err != nil {
		// the engine reserves error returns for future use; treat a
		// failed diff like an unusable input pair
		result.Outcome = FileError
		return result
	}

	if changes.Empty() || (!opts.Ordered && changes.OrderOnly()) {
		result.Outcome = OK
		return result
	}

	entries, note := report.Flatten(changes, opts.MaxItems)
	renderer := report.NewRenderer(opts.Color, report.DefaultPreviewLimit)

	var sb strings.Builder
	if opts.Flat {
		renderer.Flat(&sb, entries, note)
	} else {
		renderer.Tree(&sb, report.Nest(entries), note)
	}

	result.Outcome = Bad
	result.Report = sb.String()
	return result
}
