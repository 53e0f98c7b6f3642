// Package pgnscan lexes and parses PGN text into a flat record shape:
// a list of tag pairs and a linear move list, where each move carries
// its own attached variations exactly as they appeared in the source
// text. It performs no chess semantics — square/legality resolution is
// the tree builder's job.
package pgnscan

// ParsedVariation is one "(...)" side line attached to a move. It is an
// alternative to that move, played from the position before it (the tree
// builder makes its first move a sibling of the move), and has the same
// shape as the main move list.
type ParsedVariation struct {
	PrefixComment string
	Moves         []*ParsedMove
	SuffixComment string
}

// ParsedMove is one SAN token from the move list, in source order, plus
// whatever comments, NAGs, and nested variations attach to it. Fig, Col,
// Row, Disc, Promotion and Drop are the token's syntactic decomposition
// (piece letter, destination square, disambiguation text, promotion
// letter, drop flag) computed by the lexer/parser with no board access;
// SAN keeps the original text for the board engine's own resolution.
type ParsedMove struct {
	SAN             string
	Fig             string
	Col             byte
	Row             byte
	Disc            string
	Promotion       string
	Drop            bool
	MoveNumber      int
	StartingComment string
	Comment         string
	NAGs            []int
	Variations      []*ParsedVariation
}

// ParsedGame is one game's flat parse result: tag pairs in source order
// plus the linear move list and the game termination marker.
type ParsedGame struct {
	TagOrder []string
	Tags     map[string]string
	Moves    []*ParsedMove
	Result   string
}

func newParsedGame() *ParsedGame {
	return &ParsedGame{Tags: make(map[string]string)}
}

func (g *ParsedGame) setTag(key, value string) {
	if _, exists := g.Tags[key]; !exists {
		g.TagOrder = append(g.TagOrder, key)
	}
	g.Tags[key] = value
}
