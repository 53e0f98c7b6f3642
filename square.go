package chess

import "fmt"

// Square is a board location in 0..63, a1=0, h8=63.
// file = sq & 7, rank = sq >> 3.
type Square int8

// NoSquare marks the absence of a square (e.g. no en passant target).
const NoSquare Square = -1

// File is a board column, 0 (a) through 7 (h).
type File int8

// Rank is a board row, 0 (rank 1) through 7 (rank 8).
type Rank int8

const (
	a1 Square = iota
	b1
	c1
	d1
	e1
	f1
	g1
	h1
	a2
	b2
	c2
	d2
	e2
	f2
	g2
	h2
	a3
	b3
	c3
	d3
	e3
	f3
	g3
	h3
	a4
	b4
	c4
	d4
	e4
	f4
	g4
	h4
	a5
	b5
	c5
	d5
	e5
	f5
	g5
	h5
	a6
	b6
	c6
	d6
	e6
	f6
	g6
	h6
	a7
	b7
	c7
	d7
	e7
	f7
	g7
	h7
	a8
	b8
	c8
	d8
	e8
	f8
	g8
	h8
)

const fileLetters = "abcdefgh"

// NewSquare builds a Square from a file and rank.
func NewSquare(f File, r Rank) Square {
	return Square(int(r)<<3 | int(f))
}

// File returns the square's file (0=a .. 7=h).
func (s Square) File() File {
	return File(s & 7)
}

// Rank returns the square's rank (0=rank1 .. 7=rank8).
func (s Square) Rank() Rank {
	return Rank(s >> 3)
}

// Valid reports whether s is in range 0..63.
func (s Square) Valid() bool {
	return s >= 0 && s <= 63
}

// String renders the square in algebraic form, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", fileLetters[s.File()], int(s.Rank())+1)
}

// ParseSquare parses algebraic square text such as "e4".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, fmt.Errorf("chess: invalid square %q", text)
	}
	f := text[0]
	r := text[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return NoSquare, fmt.Errorf("chess: invalid square %q", text)
	}
	return NewSquare(File(f-'a'), Rank(r-'1')), nil
}

// String renders a file as its letter.
func (f File) String() string {
	if f < 0 || f > 7 {
		return "?"
	}
	return string(fileLetters[f])
}

// String renders a rank as its digit.
func (r Rank) String() string {
	if r < 0 || r > 7 {
		return "?"
	}
	return fmt.Sprintf("%d", int(r)+1)
}

// abs8 is the absolute-value helper used by move application.
func abs8(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
