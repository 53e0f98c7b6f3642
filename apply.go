package chess

// applyMove mutates the board for m without any legality check or undo
// bookkeeping. Callers that need undo support must snapshot first; Push
// does that via snapshot/applyMove/append.
func (b *Board) applyMove(m Move) {
	if m.IsDrop() {
		b.setPiece(m.To, Piece{Type: m.Drop, Color: b.turn})
		b.halfmoveClock = 0
		b.advanceTurn()
		return
	}
	if m.IsNull() {
		b.epSquare = NoSquare
		b.halfmoveClock++
		b.advanceTurn()
		return
	}

	mover, ok := b.PieceAt(m.From)
	if !ok {
		b.advanceTurn()
		return
	}

	isPawn := mover.Type == Pawn
	isCapture := false
	if _, occ := b.PieceAt(m.To); occ {
		isCapture = true
	}

	// En passant capture: pawn lands on the ep square but the captured
	// pawn sits behind it, not on it.
	if isPawn && m.To == b.epSquare {
		capturedRank := m.To.Rank() - 1
		if mover.Color == Black {
			capturedRank = m.To.Rank() + 1
		}
		b.clearSquare(NewSquare(m.To.File(), capturedRank))
		isCapture = true
	}

	b.clearSquare(m.From)
	placed := mover
	if m.Promotion != NoPieceType {
		placed = Piece{Type: m.Promotion, Color: mover.Color}
	}
	b.setPiece(m.To, placed)

	// Castling: relocate the rook alongside the king's two-file hop.
	if mover.Type == King {
		switch {
		case m.From == e1 && m.To == g1:
			b.clearSquare(h1)
			b.setPiece(f1, Piece{Type: Rook, Color: White})
		case m.From == e1 && m.To == c1:
			b.clearSquare(a1)
			b.setPiece(d1, Piece{Type: Rook, Color: White})
		case m.From == e8 && m.To == g8:
			b.clearSquare(h8)
			b.setPiece(f8, Piece{Type: Rook, Color: Black})
		case m.From == e8 && m.To == c8:
			b.clearSquare(a8)
			b.setPiece(d8, Piece{Type: Rook, Color: Black})
		}
	}

	b.updateCastlingRights(m, mover)

	if isPawn && abs8(int(m.To.Rank())-int(m.From.Rank())) == 2 {
		mid := (m.From.Rank() + m.To.Rank()) / 2
		b.epSquare = NewSquare(m.From.File(), mid)
	} else {
		b.epSquare = NoSquare
	}

	if isPawn || isCapture {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}

	b.advanceTurn()
}

func (b *Board) advanceTurn() {
	if b.turn == Black {
		b.fullmoveNumber++
	}
	b.turn = b.turn.Other()
}

// updateCastlingRights clears rights invalidated by a king move, a rook
// move off its home square, or a rook being captured on its home square.
func (b *Board) updateCastlingRights(m Move, mover Piece) {
	switch m.From {
	case e1:
		if mover.Type == King {
			b.castlingRights &^= WhiteKingsideRight | WhiteQueensideRight
		}
	case e8:
		if mover.Type == King {
			b.castlingRights &^= BlackKingsideRight | BlackQueensideRight
		}
	}
	clearIfRookSquare := func(sq Square) {
		switch sq {
		case a1:
			b.castlingRights &^= WhiteQueensideRight
		case h1:
			b.castlingRights &^= WhiteKingsideRight
		case a8:
			b.castlingRights &^= BlackQueensideRight
		case h8:
			b.castlingRights &^= BlackKingsideRight
		}
	}
	clearIfRookSquare(m.From)
	clearIfRookSquare(m.To)
}

// Push applies m to the board and records an undo entry. It does not
// check legality; callers that need legal-only moves should check
// IsLegal or route through PushSan/PushUCI, which do. It fails with
// ErrNoPieceToMove if m is an ordinary (non-drop, non-null) move whose
// source square is empty.
func (b *Board) Push(m Move) error {
	if !m.IsDrop() && !m.IsNull() {
		if _, ok := b.PieceAt(m.From); !ok {
			return ErrNoPieceToMove
		}
	}
	rec := undoRecord{
		move:         m,
		prevPieces:   b.pieces,
		prevTurn:     b.turn,
		prevCastling: b.castlingRights,
		prevEP:       b.epSquare,
		prevHalfmove: b.halfmoveClock,
		prevFullmove: b.fullmoveNumber,
	}
	if target, occ := b.PieceAt(m.To); occ {
		rec.capturedPiece = target
		rec.hadCapture = true
	}
	b.applyMove(m)
	b.moveStack = append(b.moveStack, rec)
	return nil
}

// Pop reverses the most recent Push, restoring the exact prior state. It
// is a no-op if the move stack is empty.
func (b *Board) Pop() (Move, bool) {
	if len(b.moveStack) == 0 {
		return Move{}, false
	}
	rec := b.moveStack[len(b.moveStack)-1]
	b.moveStack = b.moveStack[:len(b.moveStack)-1]
	b.pieces = rec.prevPieces
	b.turn = rec.prevTurn
	b.castlingRights = rec.prevCastling
	b.epSquare = rec.prevEP
	b.halfmoveClock = rec.prevHalfmove
	b.fullmoveNumber = rec.prevFullmove
	return rec.move, true
}

// PushUCI parses and pushes UCI move text, validating legality first.
func (b *Board) PushUCI(text string) error {
	m, err := ParseUCI(text)
	if err != nil {
		return err
	}
	if !b.IsLegal(m) {
		return ErrIllegalMove
	}
	return b.Push(m)
}
