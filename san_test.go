package chess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanRoundTripsThroughParent(t *testing.T) {
	b := NewBoard()
	for _, san := range []string{"e4", "e5", "Nf3", "Nc6", "Bb5", "a6"} {
		before := b.Copy()
		move, err := b.ParseSan(san)
		require.NoError(t, err)
		got, err := before.San(move)
		require.NoError(t, err)
		require.Equal(t, san, got)
		b.Push(move)
	}
}

func TestSanDisambiguatesByFile(t *testing.T) {
	b, err := NewBoardFromFEN("4k3/8/8/8/8/8/4K3/R6R w - - 0 1")
	require.NoError(t, err)
	san, err := b.San(Move{From: a1, To: d1})
	require.NoError(t, err)
	require.Equal(t, "Rad1", san)
}

func TestSanDisambiguatesByRank(t *testing.T) {
	b, err := NewBoardFromFEN("4k3/R7/8/8/8/8/8/R3K3 w Q - 0 1")
	require.NoError(t, err)
	san, err := b.San(Move{From: a1, To: a4})
	require.NoError(t, err)
	require.Equal(t, "R1a4", san)
}

func TestSanPromotion(t *testing.T) {
	b, err := NewBoardFromFEN("8/P6k/8/8/8/8/7K/8 w - - 0 1")
	require.NoError(t, err)
	san, err := b.San(Move{From: a7, To: a8, Promotion: Queen})
	require.NoError(t, err)
	require.Equal(t, "a8=Q", san)
}

func TestSanCastlingNotation(t *testing.T) {
	b, err := NewBoardFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	san, err := b.San(Move{From: e1, To: g1})
	require.NoError(t, err)
	require.Equal(t, "O-O", san)
}

func TestParseSanRejectsIllegalMove(t *testing.T) {
	b := NewBoard()
	_, err := b.ParseSan("e5")
	require.ErrorIs(t, err, ErrIllegalMove)
}

func TestParseSanAmbiguousWithoutDisambiguator(t *testing.T) {
	b, err := NewBoardFromFEN("4k3/8/8/8/8/8/4K3/R6R w - - 0 1")
	require.NoError(t, err)
	_, err = b.ParseSan("Rd1")
	require.ErrorIs(t, err, ErrIllegalMove)
}

func TestParseSanDropMove(t *testing.T) {
	b := NewBoard()
	m, err := b.ParseSan("N@e4")
	require.NoError(t, err)
	require.True(t, m.IsDrop())
	require.Equal(t, Knight, m.Drop)
	require.Equal(t, e4, m.To)
}

func TestParseSanRejectsMalformedDrop(t *testing.T) {
	b := NewBoard()
	_, err := b.ParseSan("NN@e4")
	require.ErrorIs(t, err, ErrIllegalMove)
}

func TestSanRendersDropWithoutLegalityCheck(t *testing.T) {
	b := NewBoard()
	san, err := b.San(Move{Drop: Pawn, To: e4})
	require.NoError(t, err)
	require.Equal(t, "P@e4", san)
}

func TestUciRoundTrip(t *testing.T) {
	m := Move{From: e2, To: e4}
	parsed, err := ParseUCI(m.UCI())
	require.NoError(t, err)
	require.True(t, m.Equal(parsed))
}

func TestUciNullMove(t *testing.T) {
	m, err := ParseUCI("0000")
	require.NoError(t, err)
	require.True(t, m.IsNull())
}

func TestUciDropMove(t *testing.T) {
	m, err := ParseUCI("Q@e4")
	require.NoError(t, err)
	require.True(t, m.IsDrop())
	require.Equal(t, Queen, m.Drop)
	require.Equal(t, e4, m.To)
}
