package ast

import (
	"unsafe"

	"github.com/joshuapare/zebu/ast/alloc"
	"github.com/joshuapare/zebu/ast/dict"
)

// MinNodeSize is the smallest node size accepted by New.
const MinNodeSize = int(unsafe.Sizeof(Node{}))

// poolChunkBytes is the budget for one typed node-pool chunk; the node
// size divides it into a per-chunk element count.
const poolChunkBytes = 4096

// Tree is the factory and sole owner of an AST: every node and interned
// string reachable from it came out of its arena and dies with it.
type Tree struct {
	nodeSize  int
	arena     *alloc.Arena
	strings   *dict.Dict
	nodes     *alloc.Pool[Node]
	destroyed bool
}

// New returns a tree whose nodes are budgeted at nodeSize bytes each.
// nodeSize must be at least MinNodeSize; anything smaller is a checked
// precondition violation and panics with ErrNodeSize. Parsers that attach
// extra per-node payload should embed Node in a larger struct and pass
// its size here so the arena chunks are budgeted accordingly.
func New(nodeSize int) *Tree {
	if nodeSize < MinNodeSize {
		panic(ErrNodeSize)
	}
	arena := alloc.NewArena()
	return &Tree{
		nodeSize: nodeSize,
		arena:    arena,
		strings:  dict.New(arena),
		nodes:    alloc.NewPool[Node](max(1, poolChunkBytes/nodeSize)),
	}
}

// Destroy releases every blob, pool chunk, and dictionary node at once.
// There is no partial teardown. Any later use of the tree or of a node it
// produced panics with ErrDestroyed.
func (t *Tree) Destroy() {
	t.check()
	t.destroyed = true
	t.strings.Release()
	t.nodes.Release()
	t.arena.Release()
}

// NodeSize returns the per-node byte budget the tree was created with.
func (t *Tree) NodeSize() int {
	t.check()
	return t.nodeSize
}

// Intern returns canonical arena-backed storage for s, deduplicated by
// exact content and valid until Destroy.
func (t *Tree) Intern(s string) string {
	t.check()
	return t.strings.Intern(s)
}

// Strings returns the tree's string dictionary.
func (t *Tree) Strings() *dict.Dict {
	t.check()
	return t.strings
}

// ArenaStats returns a snapshot of the backing arena's activity.
func (t *Tree) ArenaStats() alloc.Stats {
	t.check()
	return t.arena.Stats()
}

// NumNodes returns the number of nodes the tree has manufactured.
func (t *Tree) NumNodes() int {
	t.check()
	return t.nodes.Len()
}

// Null returns a new node of kind Null.
func (t *Tree) Null(token string) *Node {
	n := t.newNode(token)
	n.kind = Null
	return n
}

// Int returns a new node of kind Int carrying v.
func (t *Tree) Int(token string, v int32) *Node {
	n := t.newNode(token)
	n.kind = Int
	n.ival = v
	return n
}

// Uint returns a new node of kind Uint carrying v.
func (t *Tree) Uint(token string, v uint32) *Node {
	n := t.newNode(token)
	n.kind = Uint
	n.uval = v
	return n
}

// Double returns a new node of kind Double carrying v.
func (t *Tree) Double(token string, v float64) *Node {
	n := t.newNode(token)
	n.kind = Double
	n.dval = v
	return n
}

// Str returns a new node of kind String. The text is interned through the
// tree's dictionary; the node shares that storage and never owns a copy.
func (t *Tree) Str(token string, text string) *Node {
	n := t.newNode(token)
	n.kind = String
	n.sval = t.strings.Intern(text)
	return n
}

// Pointer returns a new node of kind Pointer carrying an opaque reference.
func (t *Tree) Pointer(token string, v any) *Node {
	n := t.newNode(token)
	n.kind = Pointer
	n.pval = v
	return n
}

// newNode hands out a zeroed node with its structural links empty and a
// reference count of one. The token is referenced, not copied.
func (t *Tree) newNode(token string) *Node {
	t.check()
	n := t.nodes.Get()
	n.tree = t
	n.token = token
	n.refs = 1
	return n
}

func (t *Tree) check() {
	if t.destroyed {
		panic(ErrDestroyed)
	}
}
