package evaluator

import (
	"github.com/cwaldbieser/logopy/internal/parser"
	"github.com/cwaldbieser/logopy/pkg/token"
)

// cursor is a forward-only view over a Node slice, the evaluator's
// analogue of the reference implementation's deque-backed TokenStream
// (popleft/peek/len). Node slices are immutable once parsed, so a
// cursor only needs an index, not its own backing copy.
type cursor struct {
	nodes []parser.Node
	pos   int
}

func newCursor(nodes []parser.Node) *cursor {
	return &cursor{nodes: nodes}
}

func (c *cursor) len() int { return len(c.nodes) - c.pos }

func (c *cursor) atEnd() bool { return c.pos >= len(c.nodes) }

// peek returns the next node without consuming it, or nil at EOF.
func (c *cursor) peek() parser.Node {
	if c.atEnd() {
		return nil
	}
	return c.nodes[c.pos]
}

// pop consumes and returns the next node, or nil at EOF.
func (c *cursor) pop() parser.Node {
	n := c.peek()
	if n != nil {
		c.pos++
	}
	return n
}

// peekOperator reports the infix operator kind of the next node, if
// any, without consuming it. Operators only ever appear as bare Atoms
// in a flat item sequence (never inside a ListLit's quoted contents).
func (c *cursor) peekOperator() (token.Kind, bool) {
	a, ok := c.peek().(parser.Atom)
	if !ok || !a.Kind.IsInfixOperator() {
		return token.ILLEGAL, false
	}
	return a.Kind, true
}

// lastPos returns the position of the most recently consumed node, or
// the zero position if nothing has been consumed yet. Used for error
// reporting when the cursor runs dry mid-expression.
func (c *cursor) lastPos() token.Position {
	if c.pos == 0 || c.pos > len(c.nodes) {
		return token.Position{}
	}
	return c.nodes[c.pos-1].Position()
}
