package chess

import (
	"fmt"
	"strings"
)

// San renders m in Standard Algebraic Notation relative to the board's
// current position (which must be the position the move is played from).
// Disambiguation is computed by searching the other legal moves sharing
// the same piece type and destination.
func (b *Board) San(m Move) (string, error) {
	if m.IsNull() {
		return "--", nil
	}
	if m.IsDrop() {
		return fmt.Sprintf("%s@%s", m.Drop.dropLetter(), m.To), nil
	}
	mover, ok := b.PieceAt(m.From)
	if !ok {
		return "", ErrNoPieceToMove
	}
	if !b.IsLegal(m) {
		return "", ErrIllegalMove
	}

	if mover.Type == King {
		if m.From == e1 && m.To == g1 || m.From == e8 && m.To == g8 {
			return b.appendCheckSuffix(m, "O-O"), nil
		}
		if m.From == e1 && m.To == c1 || m.From == e8 && m.To == c8 {
			return b.appendCheckSuffix(m, "O-O-O"), nil
		}
	}

	_, isCapture := b.PieceAt(m.To)
	isEP := mover.Type == Pawn && m.To == b.epSquare
	isCapture = isCapture || isEP

	var sb strings.Builder
	if mover.Type == Pawn {
		if isCapture {
			sb.WriteString(m.From.File().String())
		}
	} else {
		sb.WriteString(mover.Type.Letter())
		sb.WriteString(b.disambiguate(m, mover))
	}

	if isCapture {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())

	if mover.Type == Pawn && m.Promotion != NoPieceType {
		sb.WriteByte('=')
		sb.WriteString(m.Promotion.Letter())
	}

	return b.appendCheckSuffix(m, sb.String()), nil
}

// appendCheckSuffix plays m on a scratch copy to decide between "+" and
// "#", matching the check/mate suffix rule.
func (b *Board) appendCheckSuffix(m Move, san string) string {
	clone := b.Copy()
	_ = clone.Push(m) // m is already known legal; origin cannot be empty
	switch {
	case clone.IsCheckmate():
		return san + "#"
	case clone.IsCheck():
		return san + "+"
	default:
		return san
	}
}

// disambiguate returns the minimal file/rank/square prefix needed to
// distinguish m from other legal moves of the same piece type landing on
// the same square, per the SAN disambiguation rule.
func (b *Board) disambiguate(m Move, mover Piece) string {
	var sameFile, sameRank, any bool
	for _, o := range b.LegalMoves() {
		if o.To != m.To || o.From == m.From {
			continue
		}
		op, ok := b.PieceAt(o.From)
		if !ok || op.Type != mover.Type || op.Color != mover.Color {
			continue
		}
		any = true
		if o.From.File() == m.From.File() {
			sameFile = true
		}
		if o.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	if !any {
		return ""
	}
	switch {
	case !sameFile:
		return m.From.File().String()
	case !sameRank:
		return m.From.Rank().String()
	default:
		return m.From.String()
	}
}

// ParseSan resolves SAN move text against the board's legal moves.
func (b *Board) ParseSan(san string) (Move, error) {
	text := strings.TrimRight(san, "+#!?")
	text = strings.TrimSuffix(text, "e.p.")

	if text == "--" || text == "Z0" {
		return NullMove, nil
	}

	if idx := strings.IndexByte(text, '@'); idx >= 0 {
		if idx != 1 {
			return Move{}, fmt.Errorf("%w: bad drop %q", ErrIllegalMove, san)
		}
		pt := PieceTypeFromLetter(text[0])
		if pt == NoPieceType {
			return Move{}, fmt.Errorf("%w: bad drop piece in %q", ErrIllegalMove, san)
		}
		to, err := ParseSquare(text[idx+1:])
		if err != nil {
			return Move{}, fmt.Errorf("%w: bad drop destination in %q", ErrIllegalMove, san)
		}
		return Move{From: a1, To: to, Drop: pt}, nil
	}

	if text == "O-O" || text == "0-0" {
		king, ok := b.King(b.turn)
		if !ok {
			return Move{}, fmt.Errorf("%w: no king for %q", ErrIllegalMove, san)
		}
		to := g1
		if b.turn == Black {
			to = g8
		}
		m := Move{From: king, To: to}
		if !b.IsLegal(m) {
			return Move{}, fmt.Errorf("%w: %q", ErrIllegalMove, san)
		}
		return m, nil
	}
	if text == "O-O-O" || text == "0-0-0" {
		king, ok := b.King(b.turn)
		if !ok {
			return Move{}, fmt.Errorf("%w: no king for %q", ErrIllegalMove, san)
		}
		to := c1
		if b.turn == Black {
			to = c8
		}
		m := Move{From: king, To: to}
		if !b.IsLegal(m) {
			return Move{}, fmt.Errorf("%w: %q", ErrIllegalMove, san)
		}
		return m, nil
	}

	pieceType := Pawn
	rest := text
	if len(rest) > 0 && rest[0] >= 'A' && rest[0] <= 'Z' {
		pieceType = PieceTypeFromLetter(rest[0])
		if pieceType == NoPieceType {
			return Move{}, fmt.Errorf("%w: bad piece letter in %q", ErrIllegalMove, san)
		}
		rest = rest[1:]
	}

	promotion := NoPieceType
	if idx := strings.IndexByte(rest, '='); idx >= 0 {
		letter := rest[idx+1:]
		if len(letter) > 0 {
			promotion = PieceTypeFromLetter(letter[0])
		}
		rest = rest[:idx]
	}

	rest = strings.ReplaceAll(rest, "x", "")

	if len(rest) < 2 {
		return Move{}, fmt.Errorf("%w: unparseable SAN %q", ErrIllegalMove, san)
	}
	destText := rest[len(rest)-2:]
	to, err := ParseSquare(destText)
	if err != nil {
		return Move{}, fmt.Errorf("%w: bad destination in %q", ErrIllegalMove, san)
	}
	disambig := rest[:len(rest)-2]

	var candidates []Move
	for _, m := range b.LegalMoves() {
		if m.To != to || m.Promotion != promotion {
			continue
		}
		p, ok := b.PieceAt(m.From)
		if !ok || p.Type != pieceType {
			continue
		}
		if !matchesDisambiguation(m.From, disambig) {
			continue
		}
		candidates = append(candidates, m)
	}

	switch len(candidates) {
	case 1:
		return candidates[0], nil
	case 0:
		return Move{}, fmt.Errorf("%w: no legal move matches %q", ErrIllegalMove, san)
	default:
		return Move{}, fmt.Errorf("%w: ambiguous SAN %q", ErrIllegalMove, san)
	}
}

func matchesDisambiguation(from Square, disambig string) bool {
	switch len(disambig) {
	case 0:
		return true
	case 1:
		ch := disambig[0]
		if ch >= 'a' && ch <= 'h' {
			return from.File() == File(ch-'a')
		}
		if ch >= '1' && ch <= '8' {
			return from.Rank() == Rank(ch-'1')
		}
		return false
	case 2:
		sq, err := ParseSquare(disambig)
		return err == nil && from == sq
	default:
		return false
	}
}

// PushSan parses san against the current position and pushes it.
func (b *Board) PushSan(san string) (Move, error) {
	m, err := b.ParseSan(san)
	if err != nil {
		return Move{}, err
	}
	if err := b.Push(m); err != nil {
		return Move{}, err
	}
	return m, nil
}
