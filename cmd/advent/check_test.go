package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetCheckFlags() {
	checkCases = ""
	checkWorkers = 2
	checkColor = "never"
	checkFormat = "human"
	checkStrategy = ""
}

func TestRunCheck_Builtin(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	resetCheckFlags()

	err := runCheck(cmd, []string{})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "PASS  day05 part 2  almanac seed ranges  = 46")
	assert.Contains(t, output, "failed, 0 errored")
	assert.NotContains(t, output, "FAIL")
	assert.NotContains(t, output, "\x1b[", "colors disabled")
}

func TestRunCheck_SplitStrategy(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	resetCheckFlags()
	checkStrategy = "split"

	require.NoError(t, runCheck(cmd, []string{}))
}

func TestRunCheck_FailingCasebook(t *testing.T) {
	dir := t.TempDir()
	book := `cases:
  - name: good
    day: 9
    part: 1
    want: 4
    input: "1 2 3\n"
  - name: bad
    day: 9
    part: 1
    want: 5
    input: "1 2 3\n"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "book.yml"), []byte(book), 0644))

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	resetCheckFlags()
	checkCases = dir

	err := runCheck(cmd, []string{})
	require.ErrorIs(t, err, errCheckFailed)

	output := buf.String()
	assert.Contains(t, output, "PASS  day09 part 1  good")
	assert.Contains(t, output, "FAIL  day09 part 1  bad  got 4, want 5")
	assert.Contains(t, output, "1 passed, 1 failed, 0 errored")
}

func TestRunCheck_JSON(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	resetCheckFlags()
	checkFormat = "json"

	require.NoError(t, runCheck(cmd, []string{}))

	var report struct {
		Outcomes []struct {
			Status string `json:"status"`
		} `json:"outcomes"`
		Summary struct {
			Passed int `json:"passed"`
			Failed int `json:"failed"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.NotEmpty(t, report.Outcomes)
	assert.Equal(t, len(report.Outcomes), report.Summary.Passed)
	assert.Zero(t, report.Summary.Failed)
}

func TestRunCheck_Errors(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	resetCheckFlags()
	checkCases = filepath.Join(t.TempDir(), "missing")
	assert.Error(t, runCheck(cmd, []string{}))

	resetCheckFlags()
	checkFormat = "xml"
	assert.Error(t, runCheck(cmd, []string{}))
}

func TestColorEnabled(t *testing.T) {
	assert.True(t, colorEnabled("always"))
	assert.False(t, colorEnabled("never"))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, colorEnabled("auto"))
}

func TestNewCheckStyles(t *testing.T) {
	assert.Equal(t, "PASS", newCheckStyles(false).pass.Sprint("PASS"))
	assert.Contains(t, newCheckStyles(true).pass.Sprint("PASS"), "\x1b[")
}
