package deskcalc

import (
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	// name is the literal text of a nodeNum.
	name string
	// pos is the column of the token that produced the node.
	pos int

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // push num

	nodeNeg // evaluate left, then negate
	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
	nodePow // evaluate left, exp by right
	nodeNop // evaluate left
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

// fmt writes n fully parenthesized so that the result parses back to the same
// tree. If alt is true, multiplication and division use × and ÷.
func (n *node) fmt(b *strings.Builder, alt bool) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b, alt)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b, alt)
		}
		b.WriteByte('$')
	case nodeNum:
		b.WriteString(n.name)
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b, alt)
	case nodeAdd:
		n.left.fmt(b, alt)
		b.WriteString(" + ")
		n.right.fmt(b, alt)
	case nodeSub:
		n.left.fmt(b, alt)
		b.WriteString(" - ")
		n.right.fmt(b, alt)
	case nodeMul:
		n.left.fmt(b, alt)
		if !alt {
			b.WriteString(" * ")
		} else {
			b.WriteString(" × ")
		}
		n.right.fmt(b, alt)
	case nodeDiv:
		n.left.fmt(b, alt)
		if !alt {
			b.WriteString(" / ")
		} else {
			b.WriteString(" ÷ ")
		}
		n.right.fmt(b, alt)
	case nodePow:
		n.left.fmt(b, alt)
		b.WriteString(" ^ ")
		n.right.fmt(b, alt)
	case nodeNop:
		b.WriteByte('+')
		n.left.fmt(b, alt)
	default:
		panic("deskcalc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
