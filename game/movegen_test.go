package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegalMovesNamua(t *testing.T) {
	t.Run("starting position relays from every pit but the house", func(t *testing.T) {
		g := NewGame()

		got := g.LegalMoves()

		require.Equal(t, []Move{
			NamuaRelayRight(6), NamuaRelayLeft(6),
			NamuaRelayRight(5), NamuaRelayLeft(5),
		}, got)
	})

	t.Run("captures are the only legal moves when available", func(t *testing.T) {
		g := MustNew("6L")

		got := g.LegalMoves()

		require.Equal(t, []Move{
			NamuaCaptureRight(5), NamuaCaptureLeft(5),
			NamuaCaptureRight(4), NamuaCaptureLeft(4),
		}, got)
	})

	t.Run("edge captures have one direction", func(t *testing.T) {
		g := Game{
			Current: player(3, true, [NumPits]uint8{0: 1, 7: 1}),
			Other:   player(3, true, [NumPits]uint8{0: 1, 7: 1}),
		}

		got := g.LegalMoves()

		require.Equal(t, []Move{NamuaCaptureRight(7), NamuaCaptureLeft(0)}, got)
	})

	t.Run("house alone relays both ways", func(t *testing.T) {
		g := Game{
			Current: player(10, true, [NumPits]uint8{4: 6}),
			Other:   player(10, true, [NumPits]uint8{0: 1}),
		}

		got := g.LegalMoves()

		require.Equal(t, []Move{NamuaRelayRight(4), NamuaRelayLeft(4)}, got)
	})
}

func TestLegalMovesMtaji(t *testing.T) {
	t.Run("relays from pits with two or more seeds", func(t *testing.T) {
		g := Game{
			Current: player(0, true, [NumPits]uint8{2: 2, 5: 1, 9: 3}),
			Other:   player(0, true, [NumPits]uint8{0: 1}),
		}

		got := g.LegalMoves()

		require.Equal(t, []Move{
			MtajiRelayRight(2), MtajiRelayLeft(2),
			MtajiRelayRight(9), MtajiRelayLeft(9),
		}, got)
	})

	t.Run("captures land on an occupied pit facing the opponent", func(t *testing.T) {
		g := Game{
			Current: player(0, true, [NumPits]uint8{4: 2, 6: 1}),
			Other:   player(0, true, [NumPits]uint8{0: 1, 1: 3}),
		}

		got := g.LegalMoves()

		require.Equal(t, []Move{MtajiCaptureRight(4)}, got)
	})

	t.Run("captures from the back row", func(t *testing.T) {
		g := Game{
			Current: player(0, false, [NumPits]uint8{1: 1, 14: 3}),
			Other:   player(0, false, [NumPits]uint8{6: 2}),
		}

		got := g.LegalMoves()

		require.Equal(t, []Move{MtajiCaptureRight(14)}, got)
	})

	t.Run("sowing that laps back onto its source captures nothing", func(t *testing.T) {
		g := Game{
			Current: player(0, false, [NumPits]uint8{3: 16}),
			Other:   player(0, false, [NumPits]uint8{4: 1, 9: 2}),
		}

		got := g.LegalMoves()

		require.Equal(t, []Move{MtajiRelayRight(3), MtajiRelayLeft(3)}, got)
	})

	t.Run("sowing that laps onto an empty pit can capture", func(t *testing.T) {
		g := Game{
			Current: player(0, false, [NumPits]uint8{3: 17}),
			Other:   player(0, false, [NumPits]uint8{3: 1, 5: 1}),
		}

		got := g.LegalMoves()
		require.Equal(t, []Move{MtajiCaptureRight(3), MtajiCaptureLeft(3)}, got)

		for _, m := range got {
			after := g
			over := after.TakeTurn(m)
			opponent := after.Current
			if over {
				opponent = after.Other
			}
			require.Less(t, opponent.Seeds(), 2, "%s should capture", m)
			require.Equal(t, g.Seeds(), after.Seeds())
		}
	})

	t.Run("relays when no capture can be reached", func(t *testing.T) {
		g := Game{
			Current: player(0, false, [NumPits]uint8{1: 1, 10: 2}),
			Other:   player(0, false, [NumPits]uint8{6: 2}),
		}

		got := g.LegalMoves()

		require.Equal(t, []Move{MtajiRelayRight(10), MtajiRelayLeft(10)}, got)
	})

	t.Run("no moves without a pit of two", func(t *testing.T) {
		g := Game{
			Current: player(0, false, [NumPits]uint8{1: 1, 10: 1}),
			Other:   player(0, false, [NumPits]uint8{6: 2}),
		}

		require.Empty(t, g.LegalMoves())
		require.True(t, g.IsOver())
	})
}

func TestFollowUpMove(t *testing.T) {
	g := Game{
		Current: player(0, true, [NumPits]uint8{0: 2, 2: 2, 3: 1, 4: 3, 6: 2}),
		Other:   player(0, true, [NumPits]uint8{1: 1, 5: 1, 7: 1}),
	}
	f := NewMoveFactory(&g)

	t.Run("capture from the left end", func(t *testing.T) {
		got, ok := f.FollowUpMove(0, CounterClockwise, true)
		require.True(t, ok)
		require.Equal(t, Move{Index: 0, Flags: FlagCapture | FlagRelay}, got)
	})

	t.Run("capture from the right end", func(t *testing.T) {
		got, ok := f.FollowUpMove(6, CounterClockwise, true)
		require.True(t, ok)
		require.Equal(t, Move{Index: 6, Flags: FlagCapture | FlagRelay | FlagRight}, got)
	})

	t.Run("capture keeps the sowing direction in the middle", func(t *testing.T) {
		got, ok := f.FollowUpMove(2, Clockwise, true)
		require.True(t, ok)
		require.Equal(t, Move{Index: 2, Flags: FlagCapture | FlagRelay | FlagRight}, got)
	})

	t.Run("relay when nothing faces the pit", func(t *testing.T) {
		got, ok := f.FollowUpMove(4, Clockwise, true)
		require.True(t, ok)
		require.Equal(t, Move{Index: 4, Flags: FlagRelay | FlagRight}, got)
	})

	t.Run("relay without capturing in a relay turn", func(t *testing.T) {
		got, ok := f.FollowUpMove(2, CounterClockwise, false)
		require.True(t, ok)
		require.Equal(t, Move{Index: 2, Flags: FlagRelay}, got)
	})

	t.Run("no relay from the house in a relay turn", func(t *testing.T) {
		_, ok := f.FollowUpMove(4, Clockwise, false)
		require.False(t, ok)
	})

	t.Run("turn ends on a pit that was empty", func(t *testing.T) {
		_, ok := f.FollowUpMove(3, Clockwise, true)
		require.False(t, ok)
	})
}

func TestCaptureTarget(t *testing.T) {
	g := Game{
		Current: player(0, true, [NumPits]uint8{4: 2, 6: 1}),
		Other:   player(0, true, [NumPits]uint8{0: 1, 1: 3}),
	}
	f := NewMoveFactory(&g)

	got, ok := f.CaptureTarget(MtajiCaptureRight(4))
	require.True(t, ok)
	require.Equal(t, int8(1), got, "Sowing from the house lands on pit 6, facing pit 1")

	got, ok = f.CaptureTarget(NamuaCaptureLeft(3))
	require.True(t, ok)
	require.Equal(t, int8(HouseIndex), got)

	_, ok = f.CaptureTarget(MtajiRelayRight(4))
	require.False(t, ok)
}
