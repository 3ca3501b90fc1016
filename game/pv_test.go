package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestPVLineString(t *testing.T) {
	line := PVLine{
		Moves: []Move{NamuaRelayLeft(5), NamuaCaptureRight(4), NamuaRelayLeft(2)},
		Value: 1,
	}
	require.Equal(t, "+/=(1.00): 6L 5R; 3L", line.String())

	line.Value = -0.5
	require.Equal(t, "-/=(-0.50): 6L 5R; 3L", line.String())
}

func TestPVLineCompare(t *testing.T) {
	shallow := PVLine{Moves: []Move{NamuaRelayLeft(5)}, Value: 10}
	deepLow := PVLine{Moves: []Move{NamuaRelayLeft(5), NamuaCaptureRight(4)}, Value: -1}
	deepHigh := PVLine{Moves: []Move{NamuaRelayLeft(6), NamuaCaptureRight(4)}, Value: 2}
	lines := []PVLine{shallow, deepLow, deepHigh}

	slices.SortStableFunc(lines, PVLine.Compare)

	require.Equal(t, []PVLine{deepHigh, deepLow, shallow}, lines, "Deeper lines first, then higher values")
	require.Equal(t, 0, deepHigh.Compare(deepHigh))
}
