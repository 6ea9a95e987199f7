package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCopy_Shallow tests that Copy clones token, kind, and payload but
// none of the structure.
func TestCopy_Shallow(t *testing.T) {
	tree := newTestTree(t)

	src := tree.Int("n", 42)
	for range 3 {
		src.AppendChild(tree.Null("child"))
	}

	dup := tree.Copy(src)
	require.NotSame(t, src, dup)
	assert.Equal(t, "n", dup.Token())
	assert.Equal(t, Int, dup.Kind())
	assert.Equal(t, int32(42), dup.Int())
	assert.Zero(t, dup.NumChildren(), "shallow copy takes no children")
	assert.Nil(t, dup.Parent())
	assert.Equal(t, 1, dup.Refs())

	// The original is untouched.
	assert.Equal(t, 3, src.NumChildren())
}

// TestCopy_AllKinds tests payload fidelity for every kind.
func TestCopy_AllKinds(t *testing.T) {
	tree := newTestTree(t)
	ptr := &struct{ x int }{x: 1}

	nodes := []*Node{
		tree.Null("a"),
		tree.Int("b", -3),
		tree.Uint("c", 3),
		tree.Double("d", 0.5),
		tree.Str("e", "payload"),
		tree.Pointer("f", ptr),
	}

	for _, src := range nodes {
		dup := tree.Copy(src)
		assert.Equal(t, src.Token(), dup.Token())
		assert.Equal(t, src.Kind(), dup.Kind())
		assert.Equal(t, src.Int(), dup.Int())
		assert.Equal(t, src.Uint(), dup.Uint())
		assert.Equal(t, src.Double(), dup.Double())
		assert.Equal(t, src.Text(), dup.Text())
		assert.Equal(t, src.Pointer(), dup.Pointer())
	}
}

// TestCopy_StringReReferences verifies that copying a string node within
// one tree re-references the interned storage instead of duplicating it.
func TestCopy_StringReReferences(t *testing.T) {
	tree := newTestTree(t)

	src := tree.Str("s", "shared payload")
	before := tree.Strings().Len()

	dup := tree.Copy(src)
	assert.True(t, sameStorage(src.Text(), dup.Text()))
	assert.Equal(t, before, tree.Strings().Len(), "copy must not grow the dictionary")
}

// TestCopyRecursive_Isomorphic tests shape, payload, and order fidelity
// over a small three-level subtree.
func TestCopyRecursive_Isomorphic(t *testing.T) {
	tree := newTestTree(t)

	root := tree.Null("block")
	for i := range int32(3) {
		child := tree.Int("n", i+1)
		child.AppendChild(tree.Str("name", "leaf"))
		root.AppendChild(child)
	}

	dup := tree.CopyRecursive(root)
	require.NotSame(t, root, dup)
	assert.Equal(t, Sprint(root), Sprint(dup), "copied subtree must print identically")
	assert.Nil(t, dup.Parent())
}

// TestCopyRecursive_Independent verifies the copy shares no structure:
// detaching a copied child leaves the original intact.
func TestCopyRecursive_Independent(t *testing.T) {
	tree := newTestTree(t)

	root := tree.Null("block")
	for _, tok := range []string{"a", "b", "c"} {
		root.AppendChild(tree.Null(tok))
	}

	dup := tree.CopyRecursive(root)

	// Drop the middle child of the copy.
	var mid *Node
	for c := range dup.Children() {
		if c.Token() == "b" {
			mid = c
		}
	}
	require.NotNil(t, mid)
	mid.Unref()

	assert.Equal(t, []string{"a", "c"}, childTokens(dup))
	assert.Equal(t, []string{"a", "b", "c"}, childTokens(root), "original must be unaffected")
}

// TestCopyRecursive_AcrossTrees tests copying into a different tree:
// string payloads intern into the destination's own dictionary.
func TestCopyRecursive_AcrossTrees(t *testing.T) {
	src := newTestTree(t)
	dst := newTestTree(t)

	root := src.Null("block")
	root.AppendChild(src.Str("name", "foo"))

	dup := dst.CopyRecursive(root)
	assert.Equal(t, Sprint(root), Sprint(dup))

	var srcLeaf, dstLeaf *Node
	for c := range root.Children() {
		srcLeaf = c
	}
	for c := range dup.Children() {
		dstLeaf = c
	}
	assert.False(t, sameStorage(srcLeaf.Text(), dstLeaf.Text()),
		"the copy's text must live in the destination tree's arena")
	assert.Equal(t, 1, dst.Strings().Len())

	// The source tree can die without harming the copy.
	src.Destroy()
	assert.Equal(t, "foo", dstLeaf.Text())
}
