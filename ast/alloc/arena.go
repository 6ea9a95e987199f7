package alloc

const (
	// NumClasses is the number of fixed power-of-two size classes.
	NumClasses = 8

	// MaxClassSize is the largest request served from a fixed class.
	// Anything bigger goes to the overflow chain.
	MaxClassSize = 1024

	// blobCapacity is the usable capacity of one fixed-class blob.
	blobCapacity = 4096
)

// classSizes holds the rounded allocation size for each fixed class.
var classSizes = [NumClasses]int{8, 16, 32, 64, 128, 256, 512, 1024}

// blob is one chunk of arena memory with a bump offset. Chains are linked
// newest first; only the head of a chain ever receives new allocations.
type blob struct {
	next *blob
	buf  []byte
	used int
}

// Stats reports cumulative arena activity, for instrumentation and tests.
type Stats struct {
	Allocs    int // number of Alloc calls served
	Requested int // total bytes requested
	Reserved  int // total bytes consumed after class rounding
	Blobs     int // fixed-class blobs created
	Overflow  int // overflow blobs created
}

// Arena is a size-classed bump allocator over byte blobs. Allocations are
// served from per-class chains and reclaimed all at once by Release. The
// zero value is ready to use.
type Arena struct {
	classes  [NumClasses]*blob
	overflow *blob
	released bool
	stats    Stats
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Alloc returns n zeroed bytes of arena memory. The returned slice is valid
// until Release and must not be resized past its capacity.
//
// Alloc never returns nil: out-of-memory aborts the process, and misuse
// (n <= 0, or a released arena) panics with a sentinel error.
func (a *Arena) Alloc(n int) []byte {
	if a.released {
		panic(ErrReleased)
	}
	if n <= 0 {
		panic(ErrBadSize)
	}
	a.stats.Allocs++
	a.stats.Requested += n

	if n > MaxClassSize {
		// Dedicated blob sized exactly to the request. Overflow blobs
		// are full from birth and never serve another allocation.
		b := &blob{next: a.overflow, buf: make([]byte, n), used: n}
		a.overflow = b
		a.stats.Overflow++
		a.stats.Reserved += n
		return b.buf
	}

	c := classFor(n)
	size := classSizes[c]

	head := a.classes[c]
	if head == nil || head.used+size > blobCapacity {
		head = &blob{next: a.classes[c], buf: make([]byte, blobCapacity)}
		a.classes[c] = head
		a.stats.Blobs++
	}

	off := head.used
	head.used += size
	a.stats.Reserved += size

	// Cap at n so the caller cannot append into a neighboring allocation.
	return head.buf[off : off+n : off+n]
}

// Release drops every blob chain at once. No individual free exists; this
// is the only way arena memory is reclaimed. Any use of the arena after
// Release panics with ErrReleased.
func (a *Arena) Release() {
	if a.released {
		panic(ErrReleased)
	}
	a.released = true
	for c := range a.classes {
		a.classes[c] = nil
	}
	a.overflow = nil
}

// Released reports whether Release has been called.
func (a *Arena) Released() bool {
	return a.released
}

// Stats returns a snapshot of cumulative arena activity.
func (a *Arena) Stats() Stats {
	return a.stats
}

// classFor maps a request to the smallest fixed class that fits. The caller
// guarantees 0 < n <= MaxClassSize.
func classFor(n int) int {
	for c, size := range classSizes {
		if n <= size {
			return c
		}
	}
	panic(ErrBadSize)
}
