package alloc

import "errors"

var (
	// ErrBadSize indicates a non-positive allocation size.
	ErrBadSize = errors.New("alloc: size must be positive")

	// ErrReleased indicates use of an arena or pool after Release.
	ErrReleased = errors.New("alloc: use after release")

	// ErrBadChunk indicates a non-positive pool chunk capacity.
	ErrBadChunk = errors.New("alloc: chunk capacity must be positive")
)
