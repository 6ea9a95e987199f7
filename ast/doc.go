// Package ast provides the arena-backed abstract syntax tree handed to
// generated parsers.
//
// A Tree is not the tree itself but a factory: it manufactures nodes and
// interned strings out of its own arena, and the only way any of that
// memory is reclaimed is destroying the whole Tree at once. That matches
// how a parser uses an AST — build it, walk it, throw it away — and keeps
// every allocation a cheap bump.
//
// # Core Types
//
// Tree owns the arena, the typed node pool, and the string dictionary.
// Node is a tagged value of one of six kinds (Null, Int, Uint, Double,
// String, Pointer) with a caller-supplied token label, a reference count,
// and an ordered list of children.
//
// # Ownership and Lifetime
//
// Nodes are conceptually owned by their parent; a detached root belongs to
// whoever holds it. Reference counts govern structural detachment only:
// Unref at count zero removes a node from its parent and cascades to its
// children, but the backing memory lives until Tree.Destroy. After Destroy
// every access through the tree or its nodes panics with ErrDestroyed, so
// stale references are detected rather than left dangling.
//
// # Usage Example
//
//	tree := ast.New(ast.MinNodeSize)
//	defer tree.Destroy()
//
//	block := tree.Null("block")
//	block.AppendChild(tree.Int("n", 1))
//	block.AppendChild(tree.Str("name", "foo"))
//
//	for child := range block.Children() {
//		fmt.Println(ast.Sprint(child))
//	}
//
// Construction is single-threaded: a Tree and everything it owns belongs
// to one goroutine, and no operation blocks or suspends.
package ast
