package compare

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Run executes a full comparison between two paths. Invocation
// problems (nonexistent path, mixed file/directory arguments) return
// an error before any pair is compared. The boolean is true only when
// every pair is OK and no file is missing or extra.
//
// Success lines go to stdout, failure and diagnostic lines to stderr.
func Run(oldPath, newPath string, opts Options, stdout, stderr io.Writer) (bool, error) {
	pairing, err := ListPairs(oldPath, newPath)
	if err != nil {
		return false, err
	}
	if !pairing.DirMode {
		return runSingle(pairing.Pairs[0], opts, stdout, stderr), nil
	}
	return runDirs(oldPath, newPath, pairing, opts, stdout, stderr), nil
}

func runSingle(pair [2]string, opts Options, stdout, stderr io.Writer) bool {
	res := Pair(pair[0], pair[1], opts)
	if opts.JSON {
		writeJSON(stdout, res)
		return res.Outcome == OK
	}

	oldName := filepath.Base(pair[0])
	newName := filepath.Base(pair[1])
	switch res.Outcome {
	case FileError:
		fmt.Fprintln(stderr, "Error reading or parsing a file.")
		return false
	case Bad:
		fmt.Fprintf(stderr, "Differences found between '%s' and '%s':\n\n", oldName, newName)
		if opts.Verbose {
			fmt.Fprint(stderr, res.Report)
		}
		return false
	default:
		fmt.Fprintf(stdout, "Files '%s' and '%s' are identical.\n", oldName, newName)
		return true
	}
}

func runDirs(oldPath, newPath string, pairing Pairing, opts Options, stdout, stderr io.Writer) bool {
	if !opts.JSON {
		fmt.Fprintf(stdout, "Comparing directories:\n- Old: %s\n- New: %s\n\n", oldPath, newPath)
	}

	run := RunResult{Missing: pairing.Missing, Extra: pairing.Extra}
	reports := map[string]string{}
	for _, pair := range pairing.Pairs {
		name := filepath.Base(pair[0])
		switch res := Pair(pair[0], pair[1], opts); res.Outcome {
		case OK:
			run.OK = append(run.OK, name)
		case FileError:
			run.Errored = append(run.Errored, name)
		default:
			run.Bad = append(run.Bad, name)
			reports[name] = res.Report
		}
	}

	if opts.JSON {
		writeJSON(stdout, run)
		return !run.Failed()
	}

	for _, name := range run.OK {
		fmt.Fprintf(stdout, "%s  %s\n", opts.Color.Paint(color.FgGreen)("[OK  ]"), name)
	}
	for _, name := range run.Bad {
		fmt.Fprintf(stderr, "%s  %s\n", opts.Color.Paint(color.FgRed)("[BAD ]"), name)
		if opts.Verbose {
			fmt.Fprint(stderr, reports[name])
		}
	}
	for _, name := range run.Errored {
		fmt.Fprintf(stderr, "%s  %s\n", opts.Color.Paint(color.FgRed)("[ERR ]"), name)
	}
	for _, name := range run.Missing {
		fmt.Fprintf(stderr, "%s  %s\n", opts.Color.Paint(color.FgYellow)("[MISS]"), name)
	}
	for _, name := range run.Extra {
		fmt.Fprintf(stderr, "%s  %s\n", opts.Color.Paint(color.FgCyan)("[NEW ]"), name)
	}

	fmt.Fprintln(stdout)
	writeSummary(stdout, run)

	if run.Failed() {
		fmt.Fprintln(stderr, "\nComparison finished with errors.")
		return false
	}
	fmt.Fprintln(stdout, "\nComparison finished successfully.")
	return true
}

func writeSummary(w io.Writer, run RunResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Status", "Count"})
	table.SetBorder(false)
	rows := []struct {
		status string
		count  int
	}{
		{"ok", len(run.OK)},
		{"bad", len(run.Bad)},
		{"errored", len(run.Errored)},
		{"missing", len(run.Missing)},
		{"new", len(run.Extra)},
	}
	for _, row := range rows {
		table.Append([]string{row.status, strconv.Itoa(row.count)})
	}
	table.Render()
}

func writeJSON(w io.Writer, v interface{}) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
