package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDaysList(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	daysFormat = "table"

	err := runDaysList(cmd, []string{})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Day")
	assert.Contains(t, output, "Seed almanac")
	assert.Contains(t, output, "day05.txt")
}

func TestRunDaysListJSON(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	daysFormat = "json"

	err := runDaysList(cmd, []string{})
	require.NoError(t, err)

	var days []struct {
		Day   int    `json:"day"`
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &days))
	require.Len(t, days, 9)
	assert.Equal(t, 1, days[0].Day)
}

func TestRunDaysListUnknownFormat(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	daysFormat = "xml"
	assert.Error(t, runDaysList(cmd, []string{}))
}
