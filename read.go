package chess

import "github.com/lgbarn/chesstree/internal/pgnscan"

// ReadGame parses the first game out of pgnText and builds its tree. It
// returns nil if pgnText contains no game at all (empty input, or only
// whitespace and ";" line comments) or if its tags or move list cannot
// be parsed. Text holding only "{...}" comments yields a Game with no
// moves.
func ReadGame(pgnText string) *Game {
	lexer := pgnscan.NewLexer(pgnText)
	parser := pgnscan.NewParser(lexer.Tokenize())
	parsed, err := parser.ParseGame()
	if err != nil || parsed == nil {
		return nil
	}
	return buildGame(parsed)
}

// ReadGames parses every game out of pgnText and builds their trees. A
// game whose tag list or move list cannot be lexically parsed at all is
// skipped; games it could partially parse still appear with their
// recoverable errors recorded on Game.Errors.
func ReadGames(pgnText string) []*Game {
	lexer := pgnscan.NewLexer(pgnText)
	parser := pgnscan.NewParser(lexer.Tokenize())
	parsedGames, _ := parser.ParseAllGames()
	games := make([]*Game, 0, len(parsedGames))
	for _, parsed := range parsedGames {
		games = append(games, buildGame(parsed))
	}
	return games
}
