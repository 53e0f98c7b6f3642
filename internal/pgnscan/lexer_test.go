package pgnscan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func tokenTypes(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestLexerTagLine(t *testing.T) {
	tokens := NewLexer(`[Event "Foo"]`).Tokenize()
	require.Equal(t, []TokenType{TokenTagStart, TokenSymbol, TokenString, TokenTagEnd, TokenEOF}, tokenTypes(tokens))
}

func TestLexerMoveNumberAndMoves(t *testing.T) {
	tokens := NewLexer("1. e4 e5").Tokenize()
	require.Equal(t, []TokenType{TokenMoveNumber, TokenMove, TokenMove, TokenEOF}, tokenTypes(tokens))
}

func TestLexerResultForms(t *testing.T) {
	for _, text := range []string{"1-0", "0-1", "1/2-1/2", "*"} {
		tokens := NewLexer(text).Tokenize()
		require.Equal(t, TokenResult, tokens[0].Type, "text=%s", text)
		require.Equal(t, text, tokens[0].Text)
	}
}

func TestLexerCommentAndNAG(t *testing.T) {
	tokens := NewLexer("{hello} $3").Tokenize()
	require.Equal(t, TokenCommentStart, tokens[0].Type)
	require.Equal(t, "hello", tokens[0].Text)
	require.Equal(t, TokenNAG, tokens[1].Type)
	require.Equal(t, "3", tokens[1].Text)
}

func TestLexerRAV(t *testing.T) {
	tokens := NewLexer("(e4)").Tokenize()
	require.Equal(t, []TokenType{TokenRAVStart, TokenMove, TokenRAVEnd, TokenEOF}, tokenTypes(tokens))
}

func TestLexerLineCommentSkipped(t *testing.T) {
	tokens := NewLexer("e4 ; trailing remark\ne5").Tokenize()
	require.Equal(t, []TokenType{TokenMove, TokenMove, TokenEOF}, tokenTypes(tokens))
}

func TestLexerDropNotationIsOneMoveToken(t *testing.T) {
	tokens := NewLexer("N@e4 P@d5").Tokenize()
	require.Equal(t, []TokenType{TokenMove, TokenMove, TokenEOF}, tokenTypes(tokens))
	require.Equal(t, "N@e4", tokens[0].Text)
	require.Equal(t, "P@d5", tokens[1].Text)
}

func TestLexerGlyphGluedToMove(t *testing.T) {
	tokens := NewLexer("e4! e5??").Tokenize()
	require.Equal(t, []TokenType{TokenMove, TokenNAG, TokenMove, TokenNAG, TokenEOF}, tokenTypes(tokens))
	require.Equal(t, "e4", tokens[0].Text)
	require.Equal(t, "!", tokens[1].Text)
	require.Equal(t, "e5", tokens[2].Text)
	require.Equal(t, "??", tokens[3].Text)
}
