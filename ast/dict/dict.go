// Package dict provides the string-interning dictionary of an AST arena.
//
// The dictionary is an AA tree, a simplified red-black tree that keeps an
// integer level per node instead of color bits and restores balance with
// two local rotations, skew and split. It is simplified further still:
// there is no standalone lookup and no deletion. Lookup is fused into
// Intern — asking for a string that is already stored returns the existing
// storage — and entries can only die with the arena that backs them,
// matching the all-or-nothing lifetime of the tree they belong to.
package dict

import (
	"iter"
	"unsafe"

	"github.com/joshuapare/zebu/ast/alloc"
)

// nodesPerChunk sizes the backing pool chunks for dictionary nodes.
const nodesPerChunk = 128

// Dict deduplicates strings into arena-backed storage. Tree nodes come
// from a typed pool; string bytes are copied once into the byte arena, so
// small strings land in the fixed size classes and large ones take the
// overflow path.
type Dict struct {
	root  *node
	nodes *alloc.Pool[node]
	bytes *alloc.Arena
	count int
}

// node is one AA-tree node. The level stands in for red-black coloring:
// a left child must sit exactly one level below its parent, a right child
// at most one, and a right grandchild strictly below.
type node struct {
	left, right *node
	level       int
	str         string // view over arena bytes
}

// New returns an empty dictionary storing string bytes in the given arena.
func New(bytes *alloc.Arena) *Dict {
	return &Dict{
		nodes: alloc.NewPool[node](nodesPerChunk),
		bytes: bytes,
	}
}

// Intern returns canonical storage for s, valid until the arena is
// released. Interning the same text twice returns the identical storage;
// the second call allocates nothing.
func (d *Dict) Intern(s string) string {
	var out string
	d.root = d.insert(d.root, s, &out)
	return out
}

// Len returns the number of unique strings stored.
func (d *Dict) Len() int {
	return d.count
}

// All yields the stored strings in ascending lexical order.
func (d *Dict) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		inorder(d.root, yield)
	}
}

// Release drops the dictionary's nodes. String storage is owned by the
// arena and released with it.
func (d *Dict) Release() {
	d.nodes.Release()
	d.root = nil
}

// insert descends to the empty-subtree point, allocating there unless an
// exact match short-circuits the walk, then reestablishes the AA
// invariants at every node on the way back up.
func (d *Dict) insert(t *node, s string, out *string) *node {
	if t == nil {
		t = d.nodes.Get()
		t.level = 1
		t.str = d.store(s)
		d.count++
		*out = t.str
		return t
	}
	switch {
	case s < t.str:
		t.left = d.insert(t.left, s, out)
	case s > t.str:
		t.right = d.insert(t.right, s, out)
	default:
		*out = t.str
	}
	t = skew(t)
	t = split(t)
	return t
}

// store copies s into arena memory and returns a string view of that
// storage. The empty string needs no storage and is its own canonical form.
func (d *Dict) store(s string) string {
	if len(s) == 0 {
		return ""
	}
	buf := d.bytes.Alloc(len(s))
	copy(buf, s)
	return unsafe.String(&buf[0], len(buf))
}

// skew fixes a left-leaning violation: a left child sharing its parent's
// level rotates right.
func skew(t *node) *node {
	if t.left != nil && t.left.level == t.level {
		l := t.left
		t.left = l.right
		l.right = t
		return l
	}
	return t
}

// split fixes a right-leaning violation: two consecutive right links on
// one level rotate left and promote the middle node.
func split(t *node) *node {
	if t.right != nil && t.right.right != nil && t.right.right.level == t.level {
		r := t.right
		t.right = r.left
		r.left = t
		r.level++
		return r
	}
	return t
}

func inorder(t *node, yield func(string) bool) bool {
	if t == nil {
		return true
	}
	return inorder(t.left, yield) && yield(t.str) && inorder(t.right, yield)
}
