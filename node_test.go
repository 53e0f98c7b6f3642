package chess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddVariationComputesSan(t *testing.T) {
	root := newRoot(NewBoard())
	child, err := root.AddVariation(Move{From: e2, To: e4})
	require.NoError(t, err)
	require.Equal(t, "e4", child.San())
	require.True(t, child.IsMainVariation())
	require.True(t, child.IsMainline())
}

func TestSecondVariationIsNotMainline(t *testing.T) {
	root := newRoot(NewBoard())
	_, err := root.AddVariation(Move{From: e2, To: e4})
	require.NoError(t, err)
	alt, err := root.AddVariation(Move{From: d2, To: d4})
	require.NoError(t, err)
	require.False(t, alt.IsMainVariation())
	require.False(t, alt.IsMainline())
}

func TestPromoteMakesVariationMainline(t *testing.T) {
	root := newRoot(NewBoard())
	_, err := root.AddVariation(Move{From: e2, To: e4})
	require.NoError(t, err)
	alt, err := root.AddVariation(Move{From: d2, To: d4})
	require.NoError(t, err)
	alt.PromoteToMain()
	require.True(t, alt.IsMainVariation())
	require.Equal(t, alt, root.Next())
}

func TestBoardReplaysFromCachedAncestor(t *testing.T) {
	root := newRoot(NewBoard())
	n1, err := root.AddVariation(Move{From: e2, To: e4})
	require.NoError(t, err)
	n2, err := n1.AddVariation(Move{From: e7, To: e5})
	require.NoError(t, err)
	require.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2", n2.Board().FEN())
}

func TestParentBoardSanMatchesNodeSan(t *testing.T) {
	root := newRoot(NewBoard())
	n1, err := root.AddVariation(Move{From: e2, To: e4})
	require.NoError(t, err)
	parentSan, err := root.Board().San(n1.Move())
	require.NoError(t, err)
	require.Equal(t, n1.San(), parentSan)
}

func TestMainlineMovesMatchesAddLine(t *testing.T) {
	root := newRoot(NewBoard())
	moves := []Move{{From: e2, To: e4}, {From: e7, To: e5}, {From: g1, To: f3}}
	_, err := root.AddLine(moves)
	require.NoError(t, err)
	got := root.MainlineMoves()
	require.Len(t, got, len(moves))
	for i, m := range moves {
		require.True(t, m.Equal(got[i]))
	}
}

func TestAddMainVariationPromotesOverSingleSibling(t *testing.T) {
	root := newRoot(NewBoard())
	_, err := root.AddVariation(Move{From: e2, To: e4})
	require.NoError(t, err)
	main, err := root.AddMainVariation(Move{From: d2, To: d4})
	require.NoError(t, err)
	require.True(t, main.IsMainVariation())
	require.Equal(t, main, root.Next())
}

func TestDemoteMakesSiblingMainline(t *testing.T) {
	root := newRoot(NewBoard())
	first, err := root.AddVariation(Move{From: e2, To: e4})
	require.NoError(t, err)
	second, err := root.AddVariation(Move{From: d2, To: d4})
	require.NoError(t, err)
	first.Demote()
	require.Equal(t, second, root.Next())
	require.False(t, first.IsMainVariation())
}

func TestRemoveVariationDetachesChild(t *testing.T) {
	root := newRoot(NewBoard())
	n1, err := root.AddVariation(Move{From: e2, To: e4})
	require.NoError(t, err)
	require.True(t, root.HasVariation(Move{From: e2, To: e4}))
	root.RemoveVariation(n1)
	require.False(t, root.HasVariation(Move{From: e2, To: e4}))
	require.Nil(t, root.Variation(Move{From: e2, To: e4}))
	require.Nil(t, n1.Parent())
}

func TestCommandsCollectsRawAnnotations(t *testing.T) {
	root := newRoot(NewBoard())
	n1, err := root.AddVariation(Move{From: e2, To: e4})
	require.NoError(t, err)
	parseCommentCommands(n1, "[%clk 0:05:00][%eval 0.34]")
	secs, ok := n1.Clock()
	require.True(t, ok)
	require.Equal(t, 300, secs)
	require.Equal(t, "0:05:00", n1.Commands()["clk"])
	require.Equal(t, "0.34", n1.Commands()["eval"])
}

func TestCountNodesIncludesVariations(t *testing.T) {
	root := newRoot(NewBoard())
	n1, err := root.AddVariation(Move{From: e2, To: e4})
	require.NoError(t, err)
	_, err = root.AddVariation(Move{From: d2, To: d4})
	require.NoError(t, err)
	_, err = n1.AddVariation(Move{From: e7, To: e5})
	require.NoError(t, err)
	require.Equal(t, 4, root.CountNodes())
}
