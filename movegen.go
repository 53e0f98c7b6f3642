package chess

// knightOffsets and kingOffsets are expressed as (deltaFile, deltaRank)
// pairs so that wraparound across the board edge can be rejected.
var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func offsetSquare(sq Square, df, dr int) (Square, bool) {
	f := int(sq.File()) + df
	r := int(sq.Rank()) + dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return NoSquare, false
	}
	return NewSquare(File(f), Rank(r)), true
}

// pseudoLegalFrom appends every pseudo-legal move (ignoring whether it
// leaves the mover's own king in check) originating at sq to dst.
func (b *Board) pseudoLegalFrom(sq Square, dst []Move) []Move {
	p, ok := b.PieceAt(sq)
	if !ok || p.Color != b.turn {
		return dst
	}
	switch p.Type {
	case Pawn:
		return b.pawnMoves(sq, p.Color, dst)
	case Knight:
		return b.steppingMoves(sq, p.Color, knightOffsets[:], dst)
	case King:
		dst = b.steppingMoves(sq, p.Color, kingOffsets[:], dst)
		return b.castlingMoves(sq, p.Color, dst)
	case Bishop:
		return b.slidingMoves(sq, p.Color, bishopDirs[:], dst)
	case Rook:
		return b.slidingMoves(sq, p.Color, rookDirs[:], dst)
	case Queen:
		dst = b.slidingMoves(sq, p.Color, bishopDirs[:], dst)
		return b.slidingMoves(sq, p.Color, rookDirs[:], dst)
	}
	return dst
}

func (b *Board) steppingMoves(sq Square, color Color, offsets [][2]int, dst []Move) []Move {
	for _, off := range offsets {
		to, ok := offsetSquare(sq, off[0], off[1])
		if !ok {
			continue
		}
		if target, occupied := b.PieceAt(to); occupied && target.Color == color {
			continue
		}
		dst = append(dst, Move{From: sq, To: to})
	}
	return dst
}

func (b *Board) slidingMoves(sq Square, color Color, dirs [][2]int, dst []Move) []Move {
	for _, dir := range dirs {
		cur := sq
		for {
			to, ok := offsetSquare(cur, dir[0], dir[1])
			if !ok {
				break
			}
			target, occupied := b.PieceAt(to)
			if occupied && target.Color == color {
				break
			}
			dst = append(dst, Move{From: sq, To: to})
			cur = to
			if occupied {
				break
			}
		}
	}
	return dst
}

func (b *Board) pawnMoves(sq Square, color Color, dst []Move) []Move {
	dir := 1
	startRank := Rank(1)
	promoRank := Rank(7)
	if color == Black {
		dir = -1
		startRank = Rank(6)
		promoRank = Rank(0)
	}

	appendPawn := func(to Square) []Move {
		if to.Rank() == promoRank {
			for _, promo := range [4]PieceType{Queen, Rook, Bishop, Knight} {
				dst = append(dst, Move{From: sq, To: to, Promotion: promo})
			}
			return dst
		}
		dst = append(dst, Move{From: sq, To: to})
		return dst
	}

	if one, ok := offsetSquare(sq, 0, dir); ok {
		if _, occupied := b.PieceAt(one); !occupied {
			dst = appendPawn(one)
			if sq.Rank() == startRank {
				if two, ok := offsetSquare(sq, 0, 2*dir); ok {
					if _, occupied2 := b.PieceAt(two); !occupied2 {
						dst = append(dst, Move{From: sq, To: two})
					}
				}
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		to, ok := offsetSquare(sq, df, dir)
		if !ok {
			continue
		}
		if target, occupied := b.PieceAt(to); occupied {
			if target.Color != color {
				dst = appendPawn(to)
			}
			continue
		}
		if to == b.epSquare {
			dst = append(dst, Move{From: sq, To: to})
		}
	}
	return dst
}

// castlingMoves appends any castling moves available to the king on sq,
// rejecting them if the king is currently in check, passes through an
// attacked square, or lands in check.
func (b *Board) castlingMoves(sq Square, color Color, dst []Move) []Move {
	opponent := color.Other()
	if b.isAttacked(sq, opponent) {
		return dst
	}
	if color == White {
		if b.castlingRights&WhiteKingsideRight != 0 && b.castleClear(f1, g1) &&
			!b.isAttacked(f1, opponent) && !b.isAttacked(g1, opponent) {
			dst = append(dst, Move{From: e1, To: g1})
		}
		if b.castlingRights&WhiteQueensideRight != 0 && b.castleClear(b1, d1) &&
			!b.isAttacked(d1, opponent) && !b.isAttacked(c1, opponent) {
			dst = append(dst, Move{From: e1, To: c1})
		}
	} else {
		if b.castlingRights&BlackKingsideRight != 0 && b.castleClear(f8, g8) &&
			!b.isAttacked(f8, opponent) && !b.isAttacked(g8, opponent) {
			dst = append(dst, Move{From: e8, To: g8})
		}
		if b.castlingRights&BlackQueensideRight != 0 && b.castleClear(b8, d8) &&
			!b.isAttacked(d8, opponent) && !b.isAttacked(c8, opponent) {
			dst = append(dst, Move{From: e8, To: c8})
		}
	}
	return dst
}

// castleClear reports whether every square from lo to hi inclusive is empty.
func (b *Board) castleClear(lo, hi Square) bool {
	for sq := lo; sq <= hi; sq++ {
		if _, occupied := b.PieceAt(sq); occupied {
			return false
		}
	}
	return true
}

// isAttacked reports whether sq is attacked by any piece of byColor.
func (b *Board) isAttacked(sq Square, byColor Color) bool {
	pawnDir := -1
	if byColor == Black {
		pawnDir = 1
	}
	for _, df := range [2]int{-1, 1} {
		if from, ok := offsetSquare(sq, df, pawnDir); ok {
			if p, occ := b.PieceAt(from); occ && p.Color == byColor && p.Type == Pawn {
				return true
			}
		}
	}

	for _, off := range knightOffsets {
		if from, ok := offsetSquare(sq, off[0], off[1]); ok {
			if p, occ := b.PieceAt(from); occ && p.Color == byColor && p.Type == Knight {
				return true
			}
		}
	}

	for _, off := range kingOffsets {
		if from, ok := offsetSquare(sq, off[0], off[1]); ok {
			if p, occ := b.PieceAt(from); occ && p.Color == byColor && p.Type == King {
				return true
			}
		}
	}

	for _, dir := range bishopDirs {
		if b.slidingAttacks(sq, dir, byColor, Bishop, Queen) {
			return true
		}
	}
	for _, dir := range rookDirs {
		if b.slidingAttacks(sq, dir, byColor, Rook, Queen) {
			return true
		}
	}
	return false
}

func (b *Board) slidingAttacks(sq Square, dir [2]int, byColor Color, kinds ...PieceType) bool {
	cur := sq
	for {
		to, ok := offsetSquare(cur, dir[0], dir[1])
		if !ok {
			return false
		}
		p, occ := b.PieceAt(to)
		if !occ {
			cur = to
			continue
		}
		if p.Color != byColor {
			return false
		}
		for _, k := range kinds {
			if p.Type == k {
				return true
			}
		}
		return false
	}
}

// PseudoLegalMoves returns every move obeying piece-movement rules,
// without filtering moves that leave the mover's own king in check.
func (b *Board) PseudoLegalMoves() []Move {
	var moves []Move
	for sq := a1; sq <= h8; sq++ {
		moves = b.pseudoLegalFrom(sq, moves)
	}
	return moves
}

// LegalMoves returns every pseudo-legal move that does not leave the
// mover's own king in check.
func (b *Board) LegalMoves() []Move {
	pseudo := b.PseudoLegalMoves()
	legal := make([]Move, 0, len(pseudo))
	mover := b.turn
	for _, m := range pseudo {
		clone := b.Copy()
		clone.applyMove(m)
		if king, ok := clone.King(mover); ok && clone.isAttacked(king, mover.Other()) {
			continue
		}
		legal = append(legal, m)
	}
	return legal
}

// IsLegal reports whether m appears in LegalMoves.
func (b *Board) IsLegal(m Move) bool {
	for _, lm := range b.LegalMoves() {
		if lm.Equal(m) {
			return true
		}
	}
	return false
}

// IsCheck reports whether the side to move is currently in check.
func (b *Board) IsCheck() bool {
	king, ok := b.King(b.turn)
	if !ok {
		return false
	}
	return b.isAttacked(king, b.turn.Other())
}

// IsCheckmate reports check with no legal response.
func (b *Board) IsCheckmate() bool {
	return b.IsCheck() && len(b.LegalMoves()) == 0
}

// IsStalemate reports no check and no legal moves.
func (b *Board) IsStalemate() bool {
	return !b.IsCheck() && len(b.LegalMoves()) == 0
}

// IsInsufficientMaterial reports whether neither side retains enough
// material to force checkmate (king vs king, or king+minor vs king).
func (b *Board) IsInsufficientMaterial() bool {
	var minorCount [2]int
	for sq := a1; sq <= h8; sq++ {
		p, ok := b.PieceAt(sq)
		if !ok {
			continue
		}
		switch p.Type {
		case King:
			continue
		case Knight, Bishop:
			minorCount[p.Color]++
		default:
			return false
		}
	}
	return minorCount[White]+minorCount[Black] <= 1
}

// IsGameOver reports checkmate, stalemate, insufficient material, or the
// fifty-move rule.
func (b *Board) IsGameOver() bool {
	if b.IsCheckmate() || b.IsStalemate() || b.IsInsufficientMaterial() {
		return true
	}
	return b.halfmoveClock >= 100
}
