package intvec

// Chunked is the two-level build-phase Vector. The zero value is not usable;
// construct with NewChunked.
type Chunked struct {
	chunks [][]int32
	size   int32
	def    int32
}

// NewChunked returns an empty Chunked vector whose unwritten indices read as
// def.
func NewChunked(def int32) *Chunked {
	return &Chunked{def: def}
}

func (v *Chunked) Size() int32 { return v.size }

// Default returns the fill value for unwritten indices.
func (v *Chunked) Default() int32 { return v.def }

func (v *Chunked) Get(i int32) int32 {
	checkIndex(i)
	if i >= v.size {
		panic("intvec: index beyond size")
	}
	return v.chunks[i>>chunkBits][i&chunkMask]
}

func (v *Chunked) SafeGet(i int32) int32 {
	checkIndex(i)
	if i >= v.size {
		return v.def
	}
	return v.chunks[i>>chunkBits][i&chunkMask]
}

func (v *Chunked) Set(i, w int32) {
	checkIndex(i)
	if i >= v.size {
		panic("intvec: index beyond size")
	}
	v.chunks[i>>chunkBits][i&chunkMask] = w
}

func (v *Chunked) SafeSet(i, w int32) bool {
	checkIndex(i)
	grew := v.grow(i)
	v.chunks[i>>chunkBits][i&chunkMask] = w
	return grew
}

// grow ensures index i is backed by an allocated leaf and that size covers
// it. Leaves are allocated only as far as the top index of i, so slack is at
// most one leaf.
func (v *Chunked) grow(i int32) bool {
	grew := false
	top := int(i >> chunkBits)
	if top >= cap(v.chunks) {
		newCap := cap(v.chunks) * 2
		if newCap <= top {
			newCap = top + 1
		}
		chunks := make([][]int32, len(v.chunks), newCap)
		copy(chunks, v.chunks)
		v.chunks = chunks
		grew = true
	}
	for len(v.chunks) <= top {
		leaf := make([]int32, ChunkSize)
		if v.def != 0 {
			for j := range leaf {
				leaf[j] = v.def
			}
		}
		v.chunks = append(v.chunks, leaf)
		grew = true
	}
	if i >= v.size {
		v.size = i + 1
		grew = true
	}
	return grew
}

// Compact copies the vector into a Contiguous store sized exactly to Size.
// The receiver is left untouched; callers freezing a store should drop it.
func (v *Chunked) Compact() *Contiguous {
	out := &Contiguous{
		buf:  make([]int32, v.size),
		size: v.size,
		def:  v.def,
		rate: DefaultGrowthRate,
	}
	for i := int32(0); i < v.size; i += ChunkSize {
		end := i + ChunkSize
		if end > v.size {
			end = v.size
		}
		copy(out.buf[i:end], v.chunks[i>>chunkBits][:end-i])
	}
	return out
}
