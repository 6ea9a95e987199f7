package ast

import "errors"

var (
	// ErrNodeSize indicates a node size below MinNodeSize passed to New.
	ErrNodeSize = errors.New("ast: node size below minimum")

	// ErrDestroyed indicates use of a tree, node, or interned string
	// accessor after the owning tree was destroyed.
	ErrDestroyed = errors.New("ast: use after tree destroy")

	// ErrAttached indicates appending a node that already has a parent.
	ErrAttached = errors.New("ast: node already attached")
)
