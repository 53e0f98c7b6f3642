package chess

import (
	"fmt"
	"strings"
)

// Move is an immutable tuple (from, to, promotion?, drop?). A null move is
// From == To == a1 with no promotion and no drop; it is only meaningful in
// the context of a board (it never occupies a square under the current
// turn).
type Move struct {
	From      Square
	To        Square
	Promotion PieceType
	Drop      PieceType
}

// NullMove is the move with no effect, used for "--"/"Z0" in PGN.
var NullMove = Move{From: a1, To: a1}

// IsNull reports whether m is the null move shape.
func (m Move) IsNull() bool {
	return m.From == a1 && m.To == a1 && m.Promotion == NoPieceType && m.Drop == NoPieceType
}

// IsDrop reports whether m is a crazyhouse-style drop.
func (m Move) IsDrop() bool {
	return m.Drop != NoPieceType
}

// Equal reports whether two moves are the same tuple.
func (m Move) Equal(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion && m.Drop == o.Drop
}

// UCI encodes the move using the UCI grammar: four square letters, an
// optional promotion letter, "0000" for null, or "<Piece>@<square>" for a
// drop.
func (m Move) UCI() string {
	if m.IsDrop() {
		return fmt.Sprintf("%s@%s", m.Drop.dropLetter(), m.To)
	}
	if m.IsNull() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPieceType {
		s += strings.ToLower(m.Promotion.Letter())
	}
	return s
}

// String implements fmt.Stringer as the UCI form.
func (m Move) String() string {
	return m.UCI()
}

// ParseUCI parses UCI move text into a Move. It does not validate
// legality; callers that need legality should resolve the result against
// Board.LegalMoves or use Board.PushUCI.
func ParseUCI(text string) (Move, error) {
	if text == "0000" {
		return NullMove, nil
	}
	if idx := strings.IndexByte(text, '@'); idx >= 0 {
		if idx != 1 {
			return Move{}, fmt.Errorf("%w: bad drop %q", ErrBadUCI, text)
		}
		pt := PieceTypeFromLetter(text[0])
		if pt == NoPieceType {
			return Move{}, fmt.Errorf("%w: bad drop piece %q", ErrBadUCI, text)
		}
		to, err := ParseSquare(text[idx+1:])
		if err != nil {
			return Move{}, fmt.Errorf("%w: %v", ErrBadUCI, err)
		}
		return Move{From: a1, To: to, Drop: pt}, nil
	}
	if len(text) != 4 && len(text) != 5 {
		return Move{}, fmt.Errorf("%w: %q", ErrBadUCI, text)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrBadUCI, err)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrBadUCI, err)
	}
	promo := NoPieceType
	if len(text) == 5 {
		switch text[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		default:
			return Move{}, fmt.Errorf("%w: bad promotion %q", ErrBadUCI, text)
		}
	}
	return Move{From: from, To: to, Promotion: promo}, nil
}
