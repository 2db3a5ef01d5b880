package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwaldbieser/logopy/internal/interperr"
	"github.com/cwaldbieser/logopy/pkg/token"
)

// Parser builds a Node tree from a pre-lexed token slice.
//
// Unlike the grammar this interpreter is grounded on, the parser does
// not greedily fold `+ - * /` chains into a single item at parse
// time: arithmetic is resolved by the evaluator's own infix loop at
// run time (see internal/interp/evaluator). The parser's only
// arithmetic-adjacent responsibility is disambiguating a
// parenthesised command call from a parenthesised expression, which
// it does with the "second element is an operator" rule below — this
// reproduces the documented `(heading * -1 + 90)` behavior without an
// intermediate delayed-value rewrite.
type Parser struct {
	toks   []token.Token
	pos    int
	source string
	file   string
}

// New creates a Parser over toks. source and file are carried through
// for error reporting only.
func New(toks []token.Token, source, file string) *Parser {
	return &Parser{toks: toks, source: source, file: file}
}

func (p *Parser) atEnd() bool { return p.pos >= len(p.toks) }

func (p *Parser) peek() token.Token {
	if p.atEnd() {
		return token.Token{Kind: token.EOF}
	}
	return p.toks[p.pos]
}

func (p *Parser) advance() token.Token {
	t := p.peek()
	if !p.atEnd() {
		p.pos++
	}
	return t
}

func (p *Parser) parseError(pos token.Position, format string, args ...interface{}) *interperr.ParseError {
	return interperr.NewParseError(pos, fmt.Sprintf(format, args...), p.source, p.file)
}

// Parse consumes every remaining token and returns the top-level
// Node sequence.
func (p *Parser) Parse() ([]Node, error) {
	return p.parseItemList(token.EOF)
}

// parseItemList parses items until stop is the next token's kind (not
// consumed) or input is exhausted. Pass token.EOF to parse to the end
// of input.
func (p *Parser) parseItemList(stop token.Kind) ([]Node, error) {
	var nodes []Node
	for {
		if p.atEnd() {
			break
		}
		if stop != token.EOF && p.peek().Kind == stop {
			break
		}
		n, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func (p *Parser) parseItem() (Node, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.LBRACKET:
		p.advance()
		items, err := p.parseQuotedList()
		if err != nil {
			return nil, err
		}
		if p.atEnd() || p.peek().Kind != token.RBRACKET {
			return nil, p.parseError(tok.Pos, "unmatched `[`")
		}
		p.advance()
		return ListLit{Items: items, Pos: tok.Pos}, nil

	case token.LPAREN:
		p.advance()
		inner, err := p.parseItemList(token.RPAREN)
		if err != nil {
			return nil, err
		}
		if p.atEnd() || p.peek().Kind != token.RPAREN {
			return nil, p.parseError(tok.Pos, "unmatched `(`")
		}
		p.advance()
		return classifyParen(inner, tok.Pos), nil

	case token.RBRACKET:
		return nil, p.parseError(tok.Pos, "unexpected `]`")
	case token.RPAREN:
		return nil, p.parseError(tok.Pos, "unexpected `)`")

	case token.NUMBER:
		p.advance()
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, p.parseError(tok.Pos, "malformed number %q", tok.Literal)
		}
		return Number{Text: tok.Literal, Value: v, Pos: tok.Pos}, nil

	case token.WORD:
		p.advance()
		if n, ok := parseQmark(tok.Literal); ok {
			return SpecialForm{
				Name: "?",
				Args: []Node{Number{Text: strconv.Itoa(n), Value: float64(n), Pos: tok.Pos}},
				Pos:  tok.Pos,
			}, nil
		}
		return Atom{Text: tok.Literal, Kind: token.WORD, Pos: tok.Pos}, nil

	default:
		if tok.Kind.IsInfixOperator() {
			p.advance()
			return Atom{Text: tok.Literal, Kind: tok.Kind, Pos: tok.Pos}, nil
		}
		return nil, p.parseError(tok.Pos, "unexpected token %q", tok.Literal)
	}
}

// parseQuotedList parses list-literal contents: words and numbers are
// kept as written, nested lists recurse, and no command/infix
// interpretation is applied.
func (p *Parser) parseQuotedList() ([]Node, error) {
	var nodes []Node
	for {
		if p.atEnd() || p.peek().Kind == token.RBRACKET {
			return nodes, nil
		}
		tok := p.advance()
		switch tok.Kind {
		case token.LBRACKET:
			nested, err := p.parseQuotedList()
			if err != nil {
				return nil, err
			}
			if p.atEnd() || p.peek().Kind != token.RBRACKET {
				return nil, p.parseError(tok.Pos, "unmatched `[`")
			}
			p.advance()
			nodes = append(nodes, ListLit{Items: nested, Pos: tok.Pos})
		case token.NUMBER:
			v, err := strconv.ParseFloat(tok.Literal, 64)
			if err != nil {
				return nil, p.parseError(tok.Pos, "malformed number %q", tok.Literal)
			}
			nodes = append(nodes, Number{Text: tok.Literal, Value: v, Pos: tok.Pos})
		default:
			// Everything else, including operator spellings and stray
			// parens, is a literal word inside a quoted list.
			nodes = append(nodes, Atom{Text: tok.Literal, Kind: token.WORD, Pos: tok.Pos})
		}
	}
}

// classifyParen decides whether a parenthesised item list is a
// variable-arity command invocation (SpecialForm) or a value
// expression (Group), per spec §4.1/§4.5.4. A leading command atom
// makes it a SpecialForm regardless of how many items follow —
// `(heading)` is an explicit 0-arg call, not a grouped expression —
// unless the second item is an infix operator, in which case the whole
// form is an expression that merely starts with a word (the
// `(heading * -1 + 90)` case).
func classifyParen(inner []Node, pos token.Position) Node {
	if len(inner) == 0 {
		return Group{Items: inner, Pos: pos}
	}
	first, ok := inner[0].(Atom)
	if !ok || !first.IsCommandWord() {
		return Group{Items: inner, Pos: pos}
	}
	if len(inner) >= 2 {
		if second, ok := inner[1].(Atom); ok && second.Kind.IsInfixOperator() {
			return Group{Items: inner, Pos: pos}
		}
	}
	return SpecialForm{Name: first.Text, Args: inner[1:], Pos: pos}
}

// parseQmark recognizes a `?N` placeholder atom, N a positive
// integer, per spec §4.1's `?N` rewrite.
func parseQmark(text string) (int, bool) {
	if !strings.HasPrefix(text, "?") {
		return 0, false
	}
	rest := text[1:]
	if rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
