package chess

import "fmt"

// StartingFEN is the standard initial position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Castling right bits.
const (
	WhiteKingsideRight  = 1 << iota // 1
	WhiteQueensideRight             // 2
	BlackKingsideRight              // 4
	BlackQueensideRight             // 8
)

// undoRecord captures everything needed to reverse one Push.
type undoRecord struct {
	move          Move
	capturedPiece Piece
	hadCapture    bool
	prevPieces    [64]Piece
	prevTurn      Color
	prevCastling  uint8
	prevEP        Square
	prevHalfmove  int
	prevFullmove  int
}

// Board is a mutable chess position: piece placement, side to move,
// castling rights, en passant target, clocks, and an undo stack.
type Board struct {
	pieces         [64]Piece
	turn           Color
	castlingRights uint8
	epSquare       Square
	halfmoveClock  int
	fullmoveNumber int
	moveStack      []undoRecord
}

// NewBoard returns a board in the standard starting position.
func NewBoard() *Board {
	b := &Board{}
	_ = b.SetFEN(StartingFEN)
	return b
}

// NewBoardFromFEN returns a board parsed from fen, or ErrBadFen.
func NewBoardFromFEN(fen string) (*Board, error) {
	b := &Board{}
	if err := b.SetFEN(fen); err != nil {
		return nil, err
	}
	return b, nil
}

// PieceAt returns the piece on sq, or (Piece{}, false) if empty.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	p := b.pieces[sq]
	if p.Type == NoPieceType {
		return Piece{}, false
	}
	return p, true
}

func (b *Board) setPiece(sq Square, p Piece) {
	b.pieces[sq] = p
}

func (b *Board) clearSquare(sq Square) {
	b.pieces[sq] = Piece{}
}

// Turn returns the side to move.
func (b *Board) Turn() Color {
	return b.turn
}

// EPSquare returns the current en passant target square, or NoSquare.
func (b *Board) EPSquare() Square {
	return b.epSquare
}

// HalfmoveClock returns the half-move clock since the last pawn move or capture.
func (b *Board) HalfmoveClock() int {
	return b.halfmoveClock
}

// FullmoveNumber returns the current full move number.
func (b *Board) FullmoveNumber() int {
	return b.fullmoveNumber
}

// CastlingRights returns the raw 4-bit castling rights mask.
func (b *Board) CastlingRights() uint8 {
	return b.castlingRights
}

// King returns the square of color's king, or (NoSquare, false) if absent.
func (b *Board) King(color Color) (Square, bool) {
	for sq := a1; sq <= h8; sq++ {
		if p, ok := b.PieceAt(sq); ok && p.Type == King && p.Color == color {
			return sq, true
		}
	}
	return NoSquare, false
}

// Copy returns a structurally identical board with an empty move stack.
func (b *Board) Copy() *Board {
	nb := &Board{
		pieces:         b.pieces,
		turn:           b.turn,
		castlingRights: b.castlingRights,
		epSquare:       b.epSquare,
		halfmoveClock:  b.halfmoveClock,
		fullmoveNumber: b.fullmoveNumber,
	}
	return nb
}

// String implements fmt.Stringer as the board's FEN.
func (b *Board) String() string {
	return b.FEN()
}

// EPD returns the FEN with the two clock fields omitted — a compact key
// used for position-identity comparisons (not repetition detection: the
// module does not track repetition counts, per spec).
func (b *Board) EPD() string {
	fen := b.FEN()
	fields := splitFields(fen)
	if len(fields) < 4 {
		return fen
	}
	return fmt.Sprintf("%s %s %s %s", fields[0], fields[1], fields[2], fields[3])
}

// SamePosition reports whether two boards have identical piece placement,
// side to move, castling rights and en passant target (clocks excluded).
func (b *Board) SamePosition(o *Board) bool {
	return b.EPD() == o.EPD()
}
