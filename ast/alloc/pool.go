package alloc

// Pool is a typed bump allocator handing out *T from chunked []T backing
// storage. Chunks are typed, not raw bytes, so the garbage collector sees
// pointer fields held inside pooled structs; that makes a Pool the only
// legal home for node structures, while Arena serves plain byte payloads.
//
// Like Arena, a Pool only moves forward: elements are reclaimed all at
// once by Release, never individually.
type Pool[T any] struct {
	chunks   [][]T
	cur      []T
	used     int
	perChunk int
	count    int
	released bool
}

// NewPool returns a pool allocating perChunk elements per backing chunk.
func NewPool[T any](perChunk int) *Pool[T] {
	if perChunk <= 0 {
		panic(ErrBadChunk)
	}
	return &Pool[T]{perChunk: perChunk}
}

// Get returns a pointer to a zeroed element. The pointer is valid until
// Release. Get on a released pool panics with ErrReleased.
func (p *Pool[T]) Get() *T {
	if p.released {
		panic(ErrReleased)
	}
	if p.used == len(p.cur) {
		p.cur = make([]T, p.perChunk)
		p.chunks = append(p.chunks, p.cur)
		p.used = 0
	}
	e := &p.cur[p.used]
	p.used++
	p.count++
	return e
}

// Len returns the number of elements handed out.
func (p *Pool[T]) Len() int {
	return p.count
}

// Release drops all chunks at once. Any later use panics with ErrReleased.
func (p *Pool[T]) Release() {
	if p.released {
		panic(ErrReleased)
	}
	p.released = true
	p.chunks = nil
	p.cur = nil
}
