package ast

// Copy returns a new node with the same token, kind, and scalar payload
// as n but with empty structural links: no parent, no children, a fresh
// reference count of one. String payloads resolve through the dictionary,
// so copying within one tree re-references the already-interned storage.
func (t *Tree) Copy(n *Node) *Node {
	n.alive()
	switch n.kind {
	case Int:
		return t.Int(n.token, n.ival)
	case Uint:
		return t.Uint(n.token, n.uval)
	case Double:
		return t.Double(n.token, n.dval)
	case String:
		return t.Str(n.token, n.sval)
	case Pointer:
		return t.Pointer(n.token, n.pval)
	default:
		return t.Null(n.token)
	}
}

// CopyRecursive returns an independent copy of the whole subtree rooted
// at n: same shape, same per-node token, kind, and payload, same child
// order. Detaching a node in the copy never affects the original.
func (t *Tree) CopyRecursive(n *Node) *Node {
	out := t.Copy(n)
	for _, c := range n.children {
		out.AppendChild(t.CopyRecursive(c))
	}
	return out
}
