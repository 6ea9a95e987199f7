package ast

import "iter"

// Kind identifies which payload a node carries.
type Kind uint8

const (
	Null Kind = iota
	Int
	Uint
	Double
	String
	Pointer
)

var kindNames = [...]string{"null", "int", "uint", "double", "string", "pointer"}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Node is a tagged value manufactured by a Tree. Its payload fields are
// fixed at construction; its structural links (parent, children) are wired
// by the caller. A node with no parent is a root owned by whoever holds it.
type Node struct {
	tree  *Tree
	token string
	kind  Kind

	ival int32
	uval uint32
	dval float64
	sval string // interned, shared with the tree's dictionary
	pval any

	refs     int
	parent   *Node
	children []*Node
}

// Token returns the caller-supplied label the node was built with.
func (n *Node) Token() string {
	n.alive()
	return n.token
}

// Kind returns the node's payload kind.
func (n *Node) Kind() Kind {
	n.alive()
	return n.kind
}

// Int returns the Int payload; zero for other kinds.
func (n *Node) Int() int32 {
	n.alive()
	return n.ival
}

// Uint returns the Uint payload; zero for other kinds.
func (n *Node) Uint() uint32 {
	n.alive()
	return n.uval
}

// Double returns the Double payload; zero for other kinds.
func (n *Node) Double() float64 {
	n.alive()
	return n.dval
}

// Text returns the interned String payload; empty for other kinds.
func (n *Node) Text() string {
	n.alive()
	return n.sval
}

// Pointer returns the opaque Pointer payload; nil for other kinds.
func (n *Node) Pointer() any {
	n.alive()
	return n.pval
}

// Parent returns the node this one is attached to, or nil for a root.
func (n *Node) Parent() *Node {
	n.alive()
	return n.parent
}

// Refs returns the current reference count. A count of zero means the
// node has been structurally released by Unref.
func (n *Node) Refs() int {
	n.alive()
	return n.refs
}

// NumChildren returns the number of attached children.
func (n *Node) NumChildren() int {
	n.alive()
	return len(n.children)
}

// AppendChild attaches child at the end of n's child list, transferring
// the caller's reference to n. Appending a node that already has a parent
// panics with ErrAttached; share a subtree by taking an extra Ref first
// and appending a copy, or detach it with Unref.
func (n *Node) AppendChild(child *Node) {
	n.alive()
	if child.parent != nil {
		panic(ErrAttached)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// Children yields the attached children in insertion order. The iteration
// is read-only, restartable, and does not touch reference counts.
func (n *Node) Children() iter.Seq[*Node] {
	n.alive()
	return func(yield func(*Node) bool) {
		for _, c := range n.children {
			if !yield(c) {
				return
			}
		}
	}
}

// Ref adds a reference for deliberate structural sharing and returns n.
// Nodes are born with one reference.
func (n *Node) Ref() *Node {
	n.alive()
	n.refs++
	return n
}

// Unref drops one reference. While references remain the call returns n
// unchanged. At zero the node detaches from its parent, recursively
// unrefs each of its children, and returns nil. Backing memory is not
// released — that happens only at Tree.Destroy. Unref on an already
// released node is a no-op returning nil; the count never underflows.
func (n *Node) Unref() *Node {
	n.alive()
	if n.refs == 0 {
		return nil
	}
	n.refs--
	if n.refs > 0 {
		return n
	}
	n.detach()
	children := n.children
	n.children = nil
	// Every child leaves the released parent, even one kept alive by an
	// extra reference; a survivor is a root again and can be re-parented.
	for _, c := range children {
		c.parent = nil
		c.Unref()
	}
	return nil
}

// detach removes n from its parent's child list, preserving the order of
// the remaining children, and marks n a root.
func (n *Node) detach() {
	if p := n.parent; p != nil {
		for i, c := range p.children {
			if c == n {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
		n.parent = nil
	}
}

func (n *Node) alive() {
	if n.tree.destroyed {
		panic(ErrDestroyed)
	}
}
