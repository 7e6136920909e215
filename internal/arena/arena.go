// Package arena implements a bump-pointer allocator backing a single
// semantic model. All elements, relationships, and interned strings
// belonging to one model are allocated from one Arena; the Arena's
// lifetime is the model's lifetime (spec.md §3 invariant 5, §5).
package arena

// defaultBlockSize is the size of a freshly allocated block. Requests
// larger than this get a dedicated block sized to fit them exactly.
const defaultBlockSize = 64 * 1024

type block struct {
	buf    []byte
	offset int
}

func (b *block) alloc(size, align int) (unsafePtr []byte, ok bool) {
	start := alignUp(b.offset, align)
	if start+size > len(b.buf) {
		return nil, false
	}
	b.offset = start + size
	return b.buf[start : start+size : start+size], true
}

func alignUp(n, align int) int {
	if align <= 1 {
		return n
	}
	return (n + align - 1) &^ (align - 1)
}

// Arena is a list (slice) of blocks with a bump pointer in the current
// (last) block. Allocation is O(1) amortized; oversized requests get
// their own block so the common path never has to scan.
type Arena struct {
	blocks []*block
}

// New returns an Arena with one initial block.
func New() *Arena {
	a := &Arena{}
	a.blocks = append(a.blocks, &block{buf: make([]byte, defaultBlockSize)})
	return a
}

// Alloc returns size bytes aligned to align, zeroed. The returned slice
// is valid until Reset or Destroy.
func (a *Arena) Alloc(size, align int) []byte {
	if size <= 0 {
		size = 1
	}
	cur := a.blocks[len(a.blocks)-1]
	if b, ok := cur.alloc(size, align); ok {
		return b
	}
	blockSize := defaultBlockSize
	if size+align > blockSize {
		blockSize = size + align
	}
	nb := &block{buf: make([]byte, blockSize)}
	b, ok := nb.alloc(size, align)
	if !ok {
		// align can never push past a block sized for size+align.
		panic("arena: allocation does not fit freshly sized block")
	}
	a.blocks = append(a.blocks, nb)
	return b
}

// Reset keeps the first block (zeroed and rewound) and drops the rest,
// matching spec.md §4.1's "reset keeps the first block and frees the
// rest" contract. The Go runtime reclaims the dropped blocks once nothing
// still references memory allocated from them; callers must not retain
// pointers obtained from those blocks across Reset.
func (a *Arena) Reset() {
	first := a.blocks[0]
	for i := range first.buf {
		first.buf[i] = 0
	}
	first.offset = 0
	a.blocks = a.blocks[:1]
}

// Destroy drops every block. As with Reset, memory is reclaimed by the Go
// garbage collector once unreferenced rather than by an explicit free;
// this is the one place the arena's "no individual free" contract is
// satisfied by the host runtime instead of by hand-rolled bookkeeping.
func (a *Arena) Destroy() {
	a.blocks = nil
}

// Bytes returns the total number of bytes currently allocated across all
// blocks, for diagnostics and tests.
func (a *Arena) Bytes() int {
	n := 0
	for _, b := range a.blocks {
		n += b.offset
	}
	return n
}
