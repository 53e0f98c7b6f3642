package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// Game is a full parsed (or constructed) chess game: headers, the root of
// its move tree, and any errors collected while building that tree from
// PGN movetext.
type Game struct {
	Headers *Headers
	Errors  []*ParseError

	root *GameNode
}

// NewGame returns an empty game at the standard starting position.
func NewGame() *Game {
	return &Game{
		Headers: NewHeaders(),
		root:    newRoot(NewBoard()),
	}
}

// NewGameFromBoard returns an empty game whose root position is start,
// used when a PGN's FEN/SetUp header tags specify a non-standard start.
func NewGameFromBoard(start *Board) *Game {
	return &Game{
		Headers: NewHeaders(),
		root:    newRoot(start),
	}
}

// Root returns the game's root node (the starting position, ply 0).
func (g *Game) Root() *GameNode {
	return g.root
}

// End returns the last node of the game's mainline.
func (g *Game) End() *GameNode {
	return g.root.End()
}

// Mainline returns the sequence of nodes forming the game's main line.
func (g *Game) Mainline() []*GameNode {
	return g.root.Mainline()
}

// MainlineMoves returns the moves forming the game's main line.
func (g *Game) MainlineMoves() []Move {
	return g.root.MainlineMoves()
}

// nagText renders a NAG code using its "$n" form. The glossary symbols
// ("!!", "?!", ...) are not expanded here; consumers wanting symbolic
// NAGs should map codes themselves.
func nagText(code int) string {
	return "$" + strconv.Itoa(code)
}

// ToPGN renders the game as PGN text, wrapping movetext at columns
// characters per line (0 disables wrapping).
func (g *Game) ToPGN(columns int) string {
	var sb strings.Builder
	for _, key := range g.Headers.Keys() {
		val, _ := g.Headers.Get(key)
		fmt.Fprintf(&sb, "[%s %q]\n", key, val)
	}
	sb.WriteByte('\n')

	var line strings.Builder
	afterOpenParen := false
	emit := func(tok string) {
		if columns > 0 && line.Len()+len(tok)+1 > columns {
			sb.WriteString(strings.TrimRight(line.String(), " "))
			sb.WriteByte('\n')
			line.Reset()
		}
		// Parens hug their adjacent token: no space after "(" or before ")".
		if line.Len() > 0 && !afterOpenParen && tok != ")" {
			line.WriteByte(' ')
		}
		line.WriteString(tok)
		afterOpenParen = tok == "("
	}

	writeNode := func(node *GameNode, withMoveNumber bool, forceMoveNumber bool) {
		if node.startingComment != "" {
			emit("{" + node.startingComment + "}")
		}
		numberPrefix := ""
		if withMoveNumber || forceMoveNumber {
			moveNum := (node.Ply() + 1) / 2
			if node.Ply()%2 == 1 {
				numberPrefix = fmt.Sprintf("%d.", moveNum)
			} else {
				numberPrefix = fmt.Sprintf("%d...", moveNum)
			}
		}
		tok := numberPrefix + node.san
		for _, nag := range node.nags {
			tok += " " + nagText(nag)
		}
		emit(tok)
		if node.comment != "" {
			emit("{" + node.comment + "}")
		}
	}

	// write renders node's own token; descend renders node's children,
	// i.e. the move that continues from node's position (its first
	// variation) followed by any alternatives to that move in parens.
	// They are split apart because the continuation's own token must be
	// written before its siblings' parenthesized alternatives, not after
	// — the tree stores a move's alternatives as its siblings, but PGN
	// text places them right after the move they are alternatives to.
	write := func(node *GameNode, forceNumber bool) {
		if node.parent == nil {
			return
		}
		needsNumber := forceNumber || node.Ply()%2 == 1
		writeNode(node, needsNumber, forceNumber)
	}
	var descend func(node *GameNode, forceNumber bool)
	descend = func(node *GameNode, forceNumber bool) {
		if len(node.variations) == 0 {
			return
		}
		main := node.variations[0]
		write(main, forceNumber)
		for _, variation := range node.variations[1:] {
			emit("(")
			walkVariationLine(variation, emit, writeNode, true)
			emit(")")
		}
		// A move number is forced on the next continuation whenever a
		// side variation was just closed, since the reader's place was
		// just interrupted.
		descend(main, len(node.variations) > 1)
	}
	descend(g.root, false)

	if line.Len() > 0 {
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
	}

	result, _ := g.Headers.Get("Result")
	if result == "" {
		result = "*"
	}
	emit2 := result
	if sb.Len() > 0 && sb.String()[sb.Len()-1] != '\n' {
		sb.WriteByte(' ')
	}
	sb.WriteString(emit2)
	sb.WriteByte('\n')
	return sb.String()
}

// walkVariationLine renders one parenthesized side variation in full,
// including its own nested variations. startNode is always written (it
// is the move the enclosing "(" introduces); after that, each node's
// own continuation is written before that continuation's siblings'
// parenthesized alternatives, matching write/descend's ordering above.
func walkVariationLine(startNode *GameNode, emit func(string), writeNode func(*GameNode, bool, bool), forceFirstNumber bool) {
	needsNumber := forceFirstNumber || startNode.Ply()%2 == 1
	writeNode(startNode, needsNumber, forceFirstNumber)

	node := startNode
	forceNumber := false
	for len(node.variations) > 0 {
		main := node.variations[0]
		mainNeedsNumber := forceNumber || main.Ply()%2 == 1
		writeNode(main, mainNeedsNumber, forceNumber)
		for _, variation := range node.variations[1:] {
			emit("(")
			walkVariationLine(variation, emit, writeNode, true)
			emit(")")
		}
		forceNumber = len(node.variations) > 1
		node = main
	}
}
