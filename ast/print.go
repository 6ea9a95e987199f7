package ast

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes the parenthesized dump of the subtree rooted at n:
//
//	[token value child1 child2 ...]
//
// Ints and uints print in decimal, doubles with six decimals, strings
// quoted, pointers with their default formatting. The walk is read-only.
func Fprint(w io.Writer, n *Node) error {
	n.alive()
	p := printer{w: w}
	p.node(n)
	return p.err
}

// Sprint returns the parenthesized dump of the subtree rooted at n.
func Sprint(n *Node) string {
	var sb strings.Builder
	// strings.Builder never errors
	_ = Fprint(&sb, n)
	return sb.String()
}

// String implements fmt.Stringer with the node's dump.
func (n *Node) String() string {
	return Sprint(n)
}

// printer tracks the first write error so the recursion can stay flat.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	}
}

func (p *printer) node(n *Node) {
	p.printf("[%s", n.token)
	switch n.kind {
	case Int:
		p.printf(" %d", n.ival)
	case Uint:
		p.printf(" %d", n.uval)
	case Double:
		p.printf(" %f", n.dval)
	case String:
		p.printf(" %q", n.sval)
	case Pointer:
		p.printf(" %v", n.pval)
	}
	for _, c := range n.children {
		p.printf(" ")
		p.node(c)
	}
	p.printf("]")
}
