package cliutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectorReportsWarningsThenErrors(t *testing.T) {
	c := &Collector{}
	c.AddWarning("short line length")
	c.AddError(errors.New("unexpected EOF"))

	require.True(t, c.HasErrors())

	var buf bytes.Buffer
	c.Report(&buf)

	require.Equal(t, "warning: short line length\nerror: unexpected EOF\n", buf.String())
}

func TestCollectorAddErrorIgnoresNil(t *testing.T) {
	c := &Collector{}
	c.AddError(nil)

	require.False(t, c.HasErrors())
	require.Empty(t, c.Errors)
}

func TestCollectorWithNoFindingsHasNoErrors(t *testing.T) {
	c := &Collector{}
	require.False(t, c.HasErrors())

	var buf bytes.Buffer
	c.Report(&buf)
	require.Empty(t, buf.String())
}
