// Package lexer turns Logo source text into a flat stream of tokens.
//
// The lexer is whitespace-insensitive between tokens (newlines count as
// whitespace) and knows nothing about list/group nesting or infix
// arithmetic — that structure is built by internal/parser. It does,
// however, decide the word/number/operator/bracket split, since that
// split depends on per-character lookahead that only makes sense here.
package lexer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/cwaldbieser/logopy/pkg/token"
)

// punctuationWordChars are the non-alphanumeric characters the spec
// allows inside an ordinary word atom.
const punctuationWordChars = "+-*/!'#$%&\\,.:<=>?@^_`;\""

// Lexer is a rune-based scanner over a single Logo source string.
type Lexer struct {
	input string
	runes []rune
	pos   int
	line  int
	col   int
}

// New creates a Lexer over src. Input is NFC-normalized first so that
// escaped multi-rune glyphs compare equal to their precomposed forms —
// the same normalization the teacher repo applies to string literals
// before they ever reach the parser.
func New(src string) *Lexer {
	normalized := norm.NFC.String(src)
	return &Lexer{
		input: normalized,
		runes: []rune(normalized),
		line:  1,
		col:   1,
	}
}

func (l *Lexer) peekRune() (rune, bool) {
	if l.pos >= len(l.runes) {
		return 0, false
	}
	return l.runes[l.pos], true
}

func (l *Lexer) peekAt(offset int) (rune, bool) {
	idx := l.pos + offset
	if idx >= len(l.runes) {
		return 0, false
	}
	return l.runes[idx], true
}

func (l *Lexer) advance() rune {
	r := l.runes[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *Lexer) position() token.Position {
	return token.Position{Line: l.line, Column: l.col}
}

func isWordChar(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	return strings.ContainsRune(punctuationWordChars, r)
}

// Tokenize scans the entire input and returns its tokens (EOF excluded),
// with comments dropped.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var toks []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.EOF {
			break
		}
		if tok.Kind == token.COMMENT {
			continue
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

func (l *Lexer) skipWhitespace() {
	for {
		r, ok := l.peekRune()
		if !ok || !unicode.IsSpace(r) {
			return
		}
		l.advance()
	}
}

// Next scans and returns the next token, or an EOF token at end of input.
func (l *Lexer) Next() (token.Token, error) {
	l.skipWhitespace()
	pos := l.position()
	r, ok := l.peekRune()
	if !ok {
		return token.Token{Kind: token.EOF, Pos: pos}, nil
	}

	switch r {
	case '[':
		l.advance()
		return token.Token{Kind: token.LBRACKET, Literal: "[", Pos: pos}, nil
	case ']':
		l.advance()
		return token.Token{Kind: token.RBRACKET, Literal: "]", Pos: pos}, nil
	case '(':
		l.advance()
		return token.Token{Kind: token.LPAREN, Literal: "(", Pos: pos}, nil
	case ')':
		l.advance()
		return token.Token{Kind: token.RPAREN, Literal: ")", Pos: pos}, nil
	case ';':
		return l.scanComment(pos), nil
	}

	if l.isNumberStart(r) {
		return l.scanNumber(pos), nil
	}

	if isOperatorStart(r) {
		return l.scanOperator(pos), nil
	}

	return l.scanWord(pos)
}

func (l *Lexer) isNumberStart(r rune) bool {
	if unicode.IsDigit(r) {
		return true
	}
	if r == '-' {
		next, ok := l.peekAt(1)
		return ok && (unicode.IsDigit(next) || next == '.')
	}
	if r == '.' {
		next, ok := l.peekAt(1)
		return ok && unicode.IsDigit(next)
	}
	return false
}

func isOperatorStart(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '<', '>', '=':
		return true
	default:
		return false
	}
}

func (l *Lexer) scanComment(pos token.Position) token.Token {
	var sb strings.Builder
	for {
		r, ok := l.peekRune()
		if !ok || r == '\n' {
			break
		}
		sb.WriteRune(l.advance())
	}
	return token.Token{Kind: token.COMMENT, Literal: sb.String(), Pos: pos}
}

func (l *Lexer) scanNumber(pos token.Position) token.Token {
	var sb strings.Builder
	if r, _ := l.peekRune(); r == '-' {
		sb.WriteRune(l.advance())
	}
	for {
		r, ok := l.peekRune()
		if !ok || !unicode.IsDigit(r) {
			break
		}
		sb.WriteRune(l.advance())
	}
	if r, ok := l.peekRune(); ok && r == '.' {
		if next, ok2 := l.peekAt(1); ok2 && unicode.IsDigit(next) {
			sb.WriteRune(l.advance())
			for {
				r, ok := l.peekRune()
				if !ok || !unicode.IsDigit(r) {
					break
				}
				sb.WriteRune(l.advance())
			}
		}
	}
	return token.Token{Kind: token.NUMBER, Literal: sb.String(), Pos: pos}
}

func (l *Lexer) scanOperator(pos token.Position) token.Token {
	r := l.advance()
	switch r {
	case '+':
		return token.Token{Kind: token.PLUS, Literal: token.OpPlus, Pos: pos}
	case '-':
		return token.Token{Kind: token.MINUS, Literal: token.OpMinus, Pos: pos}
	case '*':
		return token.Token{Kind: token.STAR, Literal: token.OpStar, Pos: pos}
	case '/':
		return token.Token{Kind: token.SLASH, Literal: token.OpSlash, Pos: pos}
	case '=':
		return token.Token{Kind: token.EQ, Literal: token.OpEq, Pos: pos}
	case '<':
		if n, ok := l.peekRune(); ok {
			if n == '>' {
				l.advance()
				return token.Token{Kind: token.NOTEQ, Literal: token.OpNotEq, Pos: pos}
			}
			if n == '=' {
				l.advance()
				return token.Token{Kind: token.LTE, Literal: token.OpLte, Pos: pos}
			}
		}
		return token.Token{Kind: token.LT, Literal: token.OpLt, Pos: pos}
	case '>':
		if n, ok := l.peekRune(); ok && n == '=' {
			l.advance()
			return token.Token{Kind: token.GTE, Literal: token.OpGte, Pos: pos}
		}
		return token.Token{Kind: token.GT, Literal: token.OpGt, Pos: pos}
	}
	return token.Token{Kind: token.ILLEGAL, Literal: string(r), Pos: pos}
}

func (l *Lexer) scanWord(pos token.Position) (token.Token, error) {
	var sb strings.Builder
	for {
		r, ok := l.peekRune()
		if !ok {
			break
		}
		if r == '\\' {
			l.advance()
			esc, ok := l.peekRune()
			if !ok {
				break
			}
			sb.WriteRune(l.advance())
			_ = esc
			continue
		}
		if r == ';' || r == '[' || r == ']' || r == '(' || r == ')' || unicode.IsSpace(r) {
			break
		}
		sb.WriteRune(l.advance())
	}
	if sb.Len() == 0 {
		r := l.advance()
		return token.Token{Kind: token.ILLEGAL, Literal: string(r), Pos: pos},
			nil
	}
	return token.Token{Kind: token.WORD, Literal: sb.String(), Pos: pos}, nil
}
