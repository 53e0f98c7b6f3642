package chess

import (
	"github.com/lgbarn/chesstree/internal/obslog"
	"github.com/lgbarn/chesstree/internal/pgnscan"
)

// buildGame converts one flat pgnscan.ParsedGame into a Game. It applies
// the seven-tag roster plus any extra tags, resolves a FEN/SetUp starting
// position if present, and then walks the move list turning each
// attached ParsedVariation into a sibling branch from the position
// *before* the move it is attached to (matching the reference PGN tree
// semantics: a variation is an alternative to its anchor move, not a
// continuation of it).
func buildGame(parsed *pgnscan.ParsedGame) *Game {
	game := newGameFromTags(parsed)
	cur := game.root
	buildMoveSeq(game, cur, parsed.Moves)
	if parsed.Result != "" {
		game.Headers.Set("Result", parsed.Result)
	}
	return game
}

func newGameFromTags(parsed *pgnscan.ParsedGame) *Game {
	var game *Game
	if fen, ok := parsed.Tags["FEN"]; ok {
		if board, err := NewBoardFromFEN(fen); err == nil {
			game = NewGameFromBoard(board)
		}
	}
	if game == nil {
		game = NewGame()
	}
	for _, key := range parsed.TagOrder {
		game.Headers.Set(key, parsed.Tags[key])
	}
	return game
}

// buildMoveSeq walks moves in order starting at node cur (the position
// before moves[0]), attaching each move's variations as sibling branches
// from the node preceding it before advancing the mainline pointer. Each
// walked move becomes the main (first) child of its predecessor, taking
// priority over any nested variations that were attached to it (and so
// got added to the same predecessor first).
func buildMoveSeq(game *Game, cur *GameNode, moves []*pgnscan.ParsedMove) *GameNode {
	for i, pm := range moves {
		for _, pv := range pm.Variations {
			buildVariation(game, cur, pv)
		}

		board := cur.Board()
		move, err := board.ParseSan(pm.SAN)
		if err != nil {
			if fb, ok := resolveSanFallback(board, pm); ok {
				move, err = fb, nil
			}
		}
		if err != nil {
			pe := newParseError(pm.SAN, board.FEN(), "could not resolve SAN to a legal move", err)
			game.Errors = append(game.Errors, pe)
			obslog.WarnUnresolvedSAN(pm.SAN, board.FEN(), i+1, err)
			continue
		}

		next, err := cur.AddVariation(move)
		if err != nil {
			pe := newParseError(pm.SAN, board.FEN(), "resolved move rejected by board", err)
			game.Errors = append(game.Errors, pe)
			continue
		}
		next.PromoteToMain()
		applyAnnotations(next, pm)
		cur = next
	}
	return cur
}

// resolveSanFallback re-derives a move from its syntactic pieces when
// board.ParseSan cannot resolve the raw SAN token. It mirrors the SAN
// fallback rule: filter legal moves by destination square, piece
// letter, disambiguation text and promotion letter, then require
// exactly one survivor.
func resolveSanFallback(board *Board, pm *pgnscan.ParsedMove) (Move, bool) {
	if pm.Col == 0 || pm.Row == 0 {
		return Move{}, false
	}
	to, err := ParseSquare(string([]byte{pm.Col, pm.Row}))
	if err != nil {
		return Move{}, false
	}
	pieceType := Pawn
	if pm.Fig != "" {
		pieceType = PieceTypeFromLetter(pm.Fig[0])
		if pieceType == NoPieceType {
			return Move{}, false
		}
	}
	promotion := NoPieceType
	if pm.Promotion != "" {
		promotion = PieceTypeFromLetter(pm.Promotion[0])
	}

	var candidates []Move
	for _, m := range board.LegalMoves() {
		if m.To != to || m.Promotion != promotion {
			continue
		}
		p, ok := board.PieceAt(m.From)
		if !ok || p.Type != pieceType {
			continue
		}
		if !matchesDisambiguation(m.From, pm.Disc) {
			continue
		}
		candidates = append(candidates, m)
	}
	if len(candidates) == 1 {
		return candidates[0], true
	}
	return Move{}, false
}

// buildVariation builds one side line branching from anchor (the node
// preceding the move the variation is attached to). If the variation's
// own first move cannot be resolved, the entire subtree is omitted and a
// ParseError is recorded, per the variation-failure contract.
func buildVariation(game *Game, anchor *GameNode, pv *pgnscan.ParsedVariation) {
	if len(pv.Moves) == 0 {
		return
	}
	board := anchor.Board()
	first := pv.Moves[0]
	move, err := board.ParseSan(first.SAN)
	if err != nil {
		if fb, ok := resolveSanFallback(board, first); ok {
			move, err = fb, nil
		}
	}
	if err != nil {
		pe := newParseError(first.SAN, board.FEN(), "variation's first move could not be resolved; omitting variation", err)
		game.Errors = append(game.Errors, pe)
		obslog.WarnUnresolvedSAN(first.SAN, board.FEN(), 0, err)
		return
	}
	node, err := anchor.AddVariation(move)
	if err != nil {
		pe := newParseError(first.SAN, board.FEN(), "variation's first move rejected by board; omitting variation", err)
		game.Errors = append(game.Errors, pe)
		return
	}
	node.startingComment = pv.PrefixComment
	applyAnnotations(node, first)
	last := buildMoveSeq(game, node, pv.Moves[1:])
	if pv.SuffixComment != "" {
		last.comment = appendSuffix(last.comment, pv.SuffixComment)
	}
}

func appendSuffix(existing, addition string) string {
	if existing == "" {
		return addition
	}
	return existing + " " + addition
}

func applyAnnotations(node *GameNode, pm *pgnscan.ParsedMove) {
	node.comment = pm.Comment
	node.nags = append(node.nags, pm.NAGs...)
	parseCommentCommands(node, pm.Comment)
}
