package pgnscan

import (
	"fmt"
	"strconv"

	"github.com/lgbarn/chesstree/internal/obslog"
)

// Parser turns a Token stream into ParsedGame records.
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser returns a Parser over the tokens produced by a Lexer.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return NewToken(TokenEOF, "", -1)
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// ParseAllGames parses every game in the token stream.
func (p *Parser) ParseAllGames() ([]*ParsedGame, []error) {
	var games []*ParsedGame
	var errs []error
	for p.peek().Type != TokenEOF {
		game, err := p.ParseGame()
		if err != nil {
			errs = append(errs, err)
			if !p.skipToNextGame() {
				break
			}
			continue
		}
		if game == nil {
			break
		}
		games = append(games, game)
	}
	return games, errs
}

// ParseGame parses one game (tag list + move list + result), returning
// nil when only trailing whitespace/EOF remains.
func (p *Parser) ParseGame() (*ParsedGame, error) {
	if p.peek().Type == TokenEOF {
		return nil, nil
	}
	game := newParsedGame()
	if err := p.parseOptTagList(game); err != nil {
		return nil, err
	}
	if err := p.parseMoveList(game); err != nil {
		return nil, err
	}
	return game, nil
}

func (p *Parser) skipToNextGame() bool {
	for {
		tok := p.peek()
		if tok.Type == TokenEOF {
			return false
		}
		if tok.Type == TokenTagStart {
			return true
		}
		p.advance()
	}
}

func (p *Parser) parseOptTagList(game *ParsedGame) error {
	for p.peek().Type == TokenTagStart {
		if err := p.parseTag(game); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) parseTag(game *ParsedGame) error {
	p.advance() // '['
	keyTok := p.advance()
	if keyTok.Type != TokenSymbol && keyTok.Type != TokenMove {
		err := fmt.Errorf("pgnscan: expected tag key, got %s %q at %d", keyTok.Type, keyTok.Text, keyTok.Offset)
		obslog.WarnMalformedTag(keyTok.Text, err)
		return err
	}
	valTok := p.advance()
	if valTok.Type != TokenString {
		err := fmt.Errorf("pgnscan: expected tag value string after %q, got %s at %d", keyTok.Text, valTok.Type, valTok.Offset)
		obslog.WarnMalformedTag(keyTok.Text, err)
		return err
	}
	endTok := p.advance()
	if endTok.Type != TokenTagEnd {
		err := fmt.Errorf("pgnscan: expected ']' closing tag %q at %d", keyTok.Text, endTok.Offset)
		obslog.WarnMalformedTag(keyTok.Text, err)
		return err
	}
	game.setTag(keyTok.Text, valTok.Text)
	return nil
}

func (p *Parser) parseMoveList(game *ParsedGame) error {
	moves, result, _, err := p.parseMoveAndVariantSeq()
	if err != nil {
		return err
	}
	game.Moves = moves
	game.Result = result
	return nil
}

// parseMoveAndVariantSeq parses a sequence of move units until a result
// token, RAV-end, or EOF. It returns the moves, whatever result token
// text was found (possibly empty if the sequence ended on ")" or EOF),
// and any comment text left over with no move to attach to (only
// possible when the sequence held no moves at all).
func (p *Parser) parseMoveAndVariantSeq() ([]*ParsedMove, string, string, error) {
	var moves []*ParsedMove
	startingComment := ""
	for {
		tok := p.peek()
		switch tok.Type {
		case TokenEOF, TokenRAVEnd:
			return moves, "", startingComment, nil
		case TokenResult:
			p.advance()
			return moves, tok.Text, startingComment, nil
		case TokenCommentStart:
			p.advance()
			if len(moves) == 0 {
				startingComment = appendComment(startingComment, tok.Text)
			} else {
				last := moves[len(moves)-1]
				last.Comment = appendComment(last.Comment, tok.Text)
			}
			continue
		case TokenNAG:
			p.advance()
			if len(moves) > 0 {
				moves[len(moves)-1].NAGs = append(moves[len(moves)-1].NAGs, decodeNAG(tok.Text))
			}
			continue
		case TokenMoveNumber:
			p.advance()
			continue
		case TokenRAVStart:
			p.advance()
			variation, err := p.parseVariation()
			if err != nil {
				return nil, "", "", err
			}
			if len(moves) == 0 {
				return nil, "", "", fmt.Errorf("pgnscan: variation with no preceding move at %d", tok.Offset)
			}
			last := moves[len(moves)-1]
			last.Variations = append(last.Variations, variation)
			continue
		case TokenMove:
			p.advance()
			fig, col, row, disc, promotion, drop := decomposeNotation(tok.Text)
			m := &ParsedMove{
				SAN:             tok.Text,
				Fig:             fig,
				Col:             col,
				Row:             row,
				Disc:            disc,
				Promotion:       promotion,
				Drop:            drop,
				StartingComment: startingComment,
			}
			startingComment = ""
			moves = append(moves, m)
			continue
		case TokenSymbol:
			// Unrecognized symbol in move-list context; skip it rather
			// than failing the whole game.
			obslog.Debugf("pgnscan: skipping unrecognized symbol %q at %d", tok.Text, tok.Offset)
			p.advance()
			continue
		default:
			p.advance()
			continue
		}
	}
}

// parseVariation parses one "(...)" side line, assuming the opening "("
// has already been consumed.
func (p *Parser) parseVariation() (*ParsedVariation, error) {
	v := &ParsedVariation{}
	if p.peek().Type == TokenCommentStart {
		tok := p.advance()
		v.PrefixComment = tok.Text
	}
	moves, _, trailing, err := p.parseMoveAndVariantSeq()
	if err != nil {
		return nil, err
	}
	v.Moves = moves
	v.SuffixComment = trailing
	if p.peek().Type == TokenRAVEnd {
		p.advance()
	}
	return v, nil
}

func appendComment(existing, addition string) string {
	if existing == "" {
		return addition
	}
	return existing + " " + addition
}

// glyphNAGs maps the textual move-decoration glyphs PGN allows inline
// ("e4!", "e5??", "Nf3!?") to their standard NAG codes.
var glyphNAGs = map[string]int{
	"!": 1, "?": 2, "!!": 3, "??": 4, "!?": 5, "?!": 6,
}

func decodeNAG(text string) int {
	if code, ok := glyphNAGs[text]; ok {
		return code
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0
	}
	return n
}
