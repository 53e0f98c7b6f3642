package chess

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chesstree/internal/pgnscan"
)

func TestReadGameSimpleMainline(t *testing.T) {
	pgn := `[Event "Test"]
[Result "1-0"]

1. e4 e5 2. Nf3 Nc6 1-0
`
	game := ReadGame(pgn)
	require.NotNil(t, game)
	moves := game.MainlineMoves()
	require.Len(t, moves, 4)
	require.Empty(t, game.Errors)
	result, _ := game.Headers.Get("Result")
	require.Equal(t, "1-0", result)
}

// TestVariationBranchesBeforeItsAnchorMove is the central semantic test:
// a variation written after move M is a sibling of M branching from the
// position before M, not a child hanging off M.
func TestVariationBranchesBeforeItsAnchorMove(t *testing.T) {
	pgn := `[Event "Test"]

1. e4 e5 (1... c5 2. Nf3) 2. Nf3 *
`
	game := ReadGame(pgn)
	require.NotNil(t, game)
	require.Empty(t, game.Errors)

	firstMove := game.Root().Next()
	require.Equal(t, "e4", firstMove.San())

	require.Len(t, firstMove.Variations(), 2)
	mainReply := firstMove.Variations()[0]
	sideReply := firstMove.Variations()[1]

	require.Equal(t, "e5", mainReply.San())
	require.Equal(t, "c5", sideReply.San())

	require.True(t, mainReply.Parent() == firstMove)
	require.True(t, sideReply.Parent() == firstMove)

	require.Len(t, sideReply.Variations(), 1)
	require.Equal(t, "Nf3", sideReply.Variations()[0].San())
}

func TestNestedVariations(t *testing.T) {
	pgn := `[Event "Test"]

1. e4 e5 2. Nf3 Nc6 (2... Nf6 3. Nxe5 (3. d4 exd4) 3... d6) 3. Bb5 *
`
	game := ReadGame(pgn)
	require.NotNil(t, game)
	require.Empty(t, game.Errors)

	n2black := game.Root().Next().Next().Next() // e4 e5 Nf3 -> node for Nf3 is 3rd
	require.Equal(t, "Nf3", n2black.San())

	nc6 := n2black.Next()
	require.Equal(t, "Nc6", nc6.San())
	require.Len(t, n2black.Variations(), 2)

	sideLine := n2black.Variations()[1]
	require.Equal(t, "Nf6", sideLine.San())
	require.Len(t, sideLine.Variations(), 2)
	require.Equal(t, "Nxe5", sideLine.Variations()[0].San())
	require.Equal(t, "d4", sideLine.Variations()[1].San())
}

func TestUnresolvableMainlineMoveIsSkippedAndParsingContinues(t *testing.T) {
	pgn := `[Event "Test"]

1. e4 e5 2. Qh9 Nf3 *
`
	game := ReadGame(pgn)
	require.NotNil(t, game)
	require.NotEmpty(t, game.Errors)
	moves := game.MainlineMoves()
	require.Len(t, moves, 3)
	require.True(t, moves[2].Equal(Move{From: g1, To: f3}))
}

func TestUnresolvableVariationFirstMoveOmitsSubtree(t *testing.T) {
	pgn := `[Event "Test"]

1. e4 e5 (1... Zx9 2. Nf3) 2. Nf3 *
`
	game := ReadGame(pgn)
	require.NotNil(t, game)
	require.NotEmpty(t, game.Errors)
	firstMove := game.Root().Next()
	require.Len(t, firstMove.Variations(), 1)
	require.Equal(t, "e5", firstMove.Variations()[0].San())
}

func TestFenHeaderSetsStartingPosition(t *testing.T) {
	pgn := `[Event "Test"]
[SetUp "1"]
[FEN "4k3/8/8/8/8/8/8/R3K3 w Q - 0 1"]

1. Rd1 Kf8 *
`
	game := ReadGame(pgn)
	require.NotNil(t, game)
	require.Empty(t, game.Errors)
	require.Equal(t, "4k3/8/8/8/8/8/8/R3K3 w Q - 0 1", game.Root().Board().FEN())
}

func TestCommentsAndNAGsAttachToNode(t *testing.T) {
	pgn := `[Event "Test"]

1. e4 $1 {best by test} e5 *
`
	game := ReadGame(pgn)
	require.NotNil(t, game)
	first := game.Root().Next()
	require.Equal(t, "best by test", first.Comment())
	require.Equal(t, []int{1}, first.NAGs())
}

func TestReadGameEmptyInputReturnsNil(t *testing.T) {
	require.Nil(t, ReadGame(""))
	require.Nil(t, ReadGame("   \n  "))
}

func TestReadGamesMultipleGames(t *testing.T) {
	pgn := `[Event "One"]

1. e4 e5 1-0

[Event "Two"]

1. d4 d5 0-1
`
	games := ReadGames(pgn)
	require.Len(t, games, 2)
	ev1, _ := games[0].Headers.Get("Event")
	ev2, _ := games[1].Headers.Get("Event")
	require.Equal(t, "One", ev1)
	require.Equal(t, "Two", ev2)
}

func TestTrailingVariationCommentAttachesToVariationEnd(t *testing.T) {
	pgn := `[Event "Test"]

1. e4 e5 (1... c5 2. Nf3 {a fine reply} {transposes}) 2. Nf3 *
`
	game := ReadGame(pgn)
	require.NotNil(t, game)
	require.Empty(t, game.Errors)

	firstMove := game.Root().Next()
	sideReply := firstMove.Variations()[1]
	require.Equal(t, "c5", sideReply.San())

	nf3 := sideReply.Variations()[0]
	require.Equal(t, "Nf3", nf3.San())
	require.Equal(t, "a fine reply transposes", nf3.Comment())

	mainReply := firstMove.Variations()[0]
	require.Equal(t, "e5", mainReply.San())
	require.Empty(t, mainReply.Comment())
}

func TestGlyphDecorationsBecomeNAGs(t *testing.T) {
	pgn := `[Event "Test"]

1. e4! e5?? 2. Nf3 *
`
	game := ReadGame(pgn)
	require.NotNil(t, game)
	require.Empty(t, game.Errors)

	e4 := game.Root().Next()
	require.Equal(t, []int{1}, e4.NAGs())

	e5 := e4.Next()
	require.Equal(t, []int{4}, e5.NAGs())
}

func TestSanFallbackResolvesFromStructuredFields(t *testing.T) {
	board := NewBoard()
	_, err := board.ParseSan("e9")
	require.Error(t, err)

	pm := &pgnscan.ParsedMove{SAN: "e9", Col: 'e', Row: '4'}
	move, ok := resolveSanFallback(board, pm)
	require.True(t, ok)
	require.True(t, move.Equal(Move{From: e2, To: e4}))
}

func TestSanFallbackFailsWithoutASoleSurvivor(t *testing.T) {
	board, err := NewBoardFromFEN("4k3/8/8/8/8/8/4N1N1/4K3 w - - 0 1")
	require.NoError(t, err)
	pm := &pgnscan.ParsedMove{SAN: "bogus", Fig: "N", Col: 'f', Row: '4'}
	_, ok := resolveSanFallback(board, pm)
	require.False(t, ok)
}

func TestDropNotationRecordsAsLeafWithoutError(t *testing.T) {
	pgn := `[Event "Test"]

1. e4 e5 (1... N@d4) 2. Nf3 *
`
	game := ReadGame(pgn)
	require.NotNil(t, game)
	require.Empty(t, game.Errors)

	firstMove := game.Root().Next()
	require.Len(t, firstMove.Variations(), 2)
	drop := firstMove.Variations()[1]
	require.Equal(t, "N@d4", drop.San())
	require.True(t, drop.Move().IsDrop())
}

func TestClockAnnotationParsed(t *testing.T) {
	pgn := `[Event "Test"]

1. e4 {[%clk 0:05:00]} e5 *
`
	game := ReadGame(pgn)
	require.NotNil(t, game)
	first := game.Root().Next()
	secs, ok := first.Clock()
	require.True(t, ok)
	require.Equal(t, 300, secs)
}
