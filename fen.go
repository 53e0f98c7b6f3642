package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// splitFields splits on runs of whitespace (a thin wrapper over
// strings.Fields).
func splitFields(s string) []string {
	return strings.Fields(s)
}

// FEN renders the board as Forsyth-Edwards Notation.
func (b *Board) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := NewSquare(File(file), Rank(rank))
			p, ok := b.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.Symbol())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.turn == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	castling := ""
	if b.castlingRights&WhiteKingsideRight != 0 {
		castling += "K"
	}
	if b.castlingRights&WhiteQueensideRight != 0 {
		castling += "Q"
	}
	if b.castlingRights&BlackKingsideRight != 0 {
		castling += "k"
	}
	if b.castlingRights&BlackQueensideRight != 0 {
		castling += "q"
	}
	if castling == "" {
		castling = "-"
	}
	sb.WriteString(castling)

	sb.WriteByte(' ')
	if b.epSquare == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(b.epSquare.String())
	}

	fmt.Fprintf(&sb, " %d %d", b.halfmoveClock, b.fullmoveNumber)
	return sb.String()
}

// SetFEN resets the board in place from fen, replacing piece placement,
// side to move, castling rights, en passant target and clocks. The move
// stack is cleared.
func (b *Board) SetFEN(fen string) error {
	fields := splitFields(fen)
	if len(fields) < 4 {
		return fmt.Errorf("%w: %q: need at least 4 fields", ErrBadFen, fen)
	}

	var pieces [64]Piece
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: %q: need 8 ranks", ErrBadFen, fen)
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pt := PieceTypeFromLetter(byte(ch))
			color := White
			if pt == NoPieceType {
				pt = PieceTypeFromLetter(byte(ch) - 32)
				color = Black
			}
			if pt == NoPieceType {
				return fmt.Errorf("%w: %q: bad piece char %q", ErrBadFen, fen, string(ch))
			}
			if file > 7 {
				return fmt.Errorf("%w: %q: rank %d overflows", ErrBadFen, fen, i+1)
			}
			pieces[NewSquare(File(file), Rank(rank))] = Piece{Type: pt, Color: color}
			file++
		}
		if file != 8 {
			return fmt.Errorf("%w: %q: rank %d has %d files", ErrBadFen, fen, i+1, file)
		}
	}

	var turn Color
	switch fields[1] {
	case "w":
		turn = White
	case "b":
		turn = Black
	default:
		return fmt.Errorf("%w: %q: bad side to move %q", ErrBadFen, fen, fields[1])
	}

	var castling uint8
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				castling |= WhiteKingsideRight
			case 'Q':
				castling |= WhiteQueensideRight
			case 'k':
				castling |= BlackKingsideRight
			case 'q':
				castling |= BlackQueensideRight
			default:
				// Unknown castling characters (e.g. Chess960/Shredder-FEN
				// file letters) are ignored; Chess960 rights aren't modeled.
			}
		}
	}

	ep := NoSquare
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return fmt.Errorf("%w: %q: bad en passant field: %v", ErrBadFen, fen, err)
		}
		ep = sq
	}

	halfmove := 0
	fullmove := 1
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return fmt.Errorf("%w: %q: bad halfmove clock: %v", ErrBadFen, fen, err)
		}
		halfmove = n
	}
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return fmt.Errorf("%w: %q: bad fullmove number: %v", ErrBadFen, fen, err)
		}
		fullmove = n
	}

	b.pieces = pieces
	b.turn = turn
	b.castlingRights = castling
	b.epSquare = ep
	b.halfmoveClock = halfmove
	b.fullmoveNumber = fullmove
	b.moveStack = nil
	return nil
}
