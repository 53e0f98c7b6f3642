/*
Package chess provides a complete chess engine and a PGN game-tree
builder: board representation with legal move generation, SAN/UCI/FEN
I/O, and a branching game tree whose variation semantics match the
widely used reference chess library for Python.

Example usage:

	board := chess.NewBoard()
	move, err := board.ParseSan("e4")
	if err != nil {
		log.Fatal(err)
	}
	if err := board.Push(move); err != nil {
		log.Fatal(err)
	}

	game := chess.ReadGame("1. e4 e5 (1... c5 2. Nf3) 2. Nf3 *")
	fmt.Println(game.Root().Variations()[0].San())
*/
package chess
