package compare

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diffjson/diffjson/internal/report"
)

func runCapture(t *testing.T, oldPath, newPath string, opts Options) (bool, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	opts.Color = report.ColorNever
	ok, err := Run(oldPath, newPath, opts, &stdout, &stderr)
	require.NoError(t, err)
	return ok, stdout.String(), stderr.String()
}

func TestRunSingleIdentical(t *testing.T) {
	dir := t.TempDir()
	a := writeDoc(t, dir, "a.json", `{"a": 1}`)
	b := writeDoc(t, dir, "b.json", `{"a": 1}`)

	ok, stdout, stderr := runCapture(t, a, b, Options{})
	assert.True(t, ok)
	assert.Equal(t, "Files 'a.json' and 'b.json' are identical.\n", stdout)
	assert.Empty(t, stderr)
}

func TestRunSingleDiffers(t *testing.T) {
	dir := t.TempDir()
	a := writeDoc(t, dir, "a.json", `{"a": 1}`)
	b := writeDoc(t, dir, "b.json", `{"a": 2}`)

	ok, stdout, stderr := runCapture(t, a, b, Options{})
	assert.False(t, ok)
	assert.Empty(t, stdout)
	assert.Equal(t, "Differences found between 'a.json' and 'b.json':\n\n", stderr)

	ok, _, stderr = runCapture(t, a, b, Options{Verbose: true})
	assert.False(t, ok)
	assert.Contains(t, stderr, "['a']")
}

func TestRunSingleFileError(t *testing.T) {
	dir := t.TempDir()
	a := writeDoc(t, dir, "a.json", `{"a": 1}`)
	b := writeDoc(t, dir, "b.json", `not json at all {`)

	ok, stdout, stderr := runCapture(t, a, b, Options{})
	assert.False(t, ok)
	assert.Empty(t, stdout)
	assert.Equal(t, "Error reading or parsing a file.\n", stderr)
}

func TestRunDirectories(t *testing.T) {
	oldDir := t.TempDir()
	newDir := t.TempDir()
	writeDoc(t, oldDir, "same.json", `{"a": 1}`)
	writeDoc(t, newDir, "same.json", `{"a": 1}`)
	writeDoc(t, oldDir, "diff.json", `{"a": 1}`)
	writeDoc(t, newDir, "diff.json", `{"a": 2}`)
	writeDoc(t, oldDir, "gone.json", `{}`)
	writeDoc(t, newDir, "fresh.json", `{}`)
	writeDoc(t, oldDir, "broken.json", `{"a":`)
	writeDoc(t, newDir, "broken.json", `{"a": 1}`)

	ok, stdout, stderr := runCapture(t, oldDir, newDir, Options{})
	assert.False(t, ok)

	assert.Contains(t, stdout, "Comparing directories:\n- Old: "+oldDir+"\n- New: "+newDir+"\n\n")
	assert.Contains(t, stdout, "[OK  ]  same.json\n")
	assert.Contains(t, stderr, "[BAD ]  diff.json\n")
	assert.Contains(t, stderr, "[ERR ]  broken.json\n")
	assert.Contains(t, stderr, "[MISS]  gone.json\n")
	assert.Contains(t, stderr, "[NEW ]  fresh.json\n")
	assert.Contains(t, stderr, "Comparison finished with errors.\n")
	assert.NotContains(t, stdout, "finished successfully")
}

func TestRunDirectoriesAllClean(t *testing.T) {
	oldDir := t.TempDir()
	newDir := t.TempDir()
	writeDoc(t, oldDir, "a.json", `{"a": 1}`)
	writeDoc(t, newDir, "a.json", `{"a": 1}`)

	ok, stdout, stderr := runCapture(t, oldDir, newDir, Options{})
	assert.True(t, ok)
	assert.Contains(t, stdout, "[OK  ]  a.json\n")
	assert.Contains(t, stdout, "Comparison finished successfully.\n")
	assert.Empty(t, stderr)
}

func TestRunInvalidInvocation(t *testing.T) {
	dir := t.TempDir()
	a := writeDoc(t, dir, "a.json", `{}`)

	var stdout, stderr bytes.Buffer
	_, err := Run(a, dir, Options{}, &stdout, &stderr)
	require.Error(t, err)
}

func TestRunSingleJSON(t *testing.T) {
	dir := t.TempDir()
	a := writeDoc(t, dir, "a.json", `{"a": 1}`)
	b := writeDoc(t, dir, "b.json", `{"a": 2}`)

	ok, stdout, _ := runCapture(t, a, b, Options{JSON: true, Flat: true})
	assert.False(t, ok)

	var res Result
	require.NoError(t, json.Unmarshal([]byte(stdout), &res))
	assert.Equal(t, Bad, res.Outcome)
	assert.Equal(t, a, res.Old)
	assert.Contains(t, res.Report, "['a']")
}

func TestRunDirectoriesJSON(t *testing.T) {
	oldDir := t.TempDir()
	newDir := t.TempDir()
	writeDoc(t, oldDir, "a.json", `{"a": 1}`)
	writeDoc(t, newDir, "a.json", `{"a": 2}`)
	writeDoc(t, newDir, "b.json", `{}`)

	ok, stdout, stderr := runCapture(t, oldDir, newDir, Options{JSON: true})
	assert.False(t, ok)
	assert.Empty(t, stderr)

	var run RunResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &run))
	assert.Equal(t, []string{"a.json"}, run.Bad)
	assert.Equal(t, []string{"b.json"}, run.Extra)
	assert.Empty(t, run.OK)
}
