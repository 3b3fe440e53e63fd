package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPartPathZeroPadsToPartCountWidth(t *testing.T) {
	require.Equal(t, "/tmp/beam_Part1.egsphsp", partPath("/tmp/beam.egsphsp", 0, 9))
	require.Equal(t, "/tmp/beam_Part10.egsphsp", partPath("/tmp/beam.egsphsp", 9, 12))
	require.Equal(t, "/tmp/beam_Part1.egsphsp", partPath("/tmp/beam.egsphsp", 0, 1))
}
