// Package alloc provides the bulk-freed memory layer underneath an AST.
//
// # Overview
//
// Everything a tree hands out — nodes, interned string storage — comes from
// this package and is reclaimed in a single shot when the tree is destroyed.
// There is deliberately no per-object free: an AST built by a generated
// parser is abandoned wholesale, so the allocator only ever moves forward.
//
// Two allocators cooperate:
//
// Arena: a size-classed byte allocator
//
//   - 8 fixed power-of-two classes (8 B to 1 KiB), one blob chain each
//   - an overflow chain for larger requests, one dedicated blob per request
//   - bump allocation within the newest blob of a chain; exhausted blobs
//     are retained, never recycled, until Release
//
// Pool: a typed bump allocator for node structs
//
//   - hands out *T from chunked []T backing storage
//   - chunks are typed so the garbage collector traces pointer fields held
//     inside pooled structs; structs are never built over raw byte memory
//
// # Size Classes
//
// A request is rounded up to the smallest class that fits:
//
//	Class 0:    1 -    8 bytes
//	Class 1:    9 -   16 bytes
//	Class 2:   17 -   32 bytes
//	Class 3:   33 -   64 bytes
//	Class 4:   65 -  128 bytes
//	Class 5:  129 -  256 bytes
//	Class 6:  257 -  512 bytes
//	Class 7:  513 - 1024 bytes
//	Overflow: 1025+ bytes (blob sized exactly to the request)
//
// # Failure Model
//
// Alloc never returns nil and never returns an error: running out of
// memory is fatal (the runtime aborts), and misuse — a non-positive size,
// or any call after Release — is a programming error reported as a panic
// carrying one of this package's sentinel errors.
//
// # Thread Safety
//
// Arena and Pool are not thread-safe. A tree and its allocators belong to
// one goroutine for the duration of construction.
package alloc
