package intvec

import "math"

// Contiguous is the flat frozen-phase Vector. The zero value is not usable;
// construct with NewContiguous or Chunked.Compact.
type Contiguous struct {
	buf  []int32
	size int32
	def  int32
	rate float64
}

// NewContiguous returns an empty Contiguous vector with the given initial
// capacity and geometric growth rate. Unwritten indices read as def.
func NewContiguous(initialCap int32, rate float64, def int32) (*Contiguous, error) {
	if rate <= 1.0 {
		return nil, ErrGrowthRate
	}
	if initialCap < 1 {
		return nil, ErrInitialCapacity
	}
	v := &Contiguous{
		buf:  make([]int32, initialCap),
		def:  def,
		rate: rate,
	}
	if def != 0 {
		for i := range v.buf {
			v.buf[i] = def
		}
	}
	return v, nil
}

func (v *Contiguous) Size() int32 { return v.size }

// Default returns the fill value for unwritten indices.
func (v *Contiguous) Default() int32 { return v.def }

// Cap returns the allocated capacity.
func (v *Contiguous) Cap() int32 { return int32(len(v.buf)) }

func (v *Contiguous) Get(i int32) int32 {
	checkIndex(i)
	if i >= v.size {
		panic("intvec: index beyond size")
	}
	return v.buf[i]
}

func (v *Contiguous) SafeGet(i int32) int32 {
	checkIndex(i)
	if i >= v.size {
		return v.def
	}
	return v.buf[i]
}

func (v *Contiguous) Set(i, w int32) {
	checkIndex(i)
	if i >= v.size {
		panic("intvec: index beyond size")
	}
	v.buf[i] = w
}

func (v *Contiguous) SafeSet(i, w int32) bool {
	checkIndex(i)
	grew := false
	if int(i) >= len(v.buf) {
		newLen := int32(math.Ceil(float64(i) * v.rate))
		if newLen <= i {
			newLen = i + 1
		}
		buf := make([]int32, newLen)
		copy(buf, v.buf)
		if v.def != 0 {
			for j := len(v.buf); j < int(newLen); j++ {
				buf[j] = v.def
			}
		}
		v.buf = buf
	}
	if i >= v.size {
		v.size = i + 1
		grew = true
	}
	v.buf[i] = w
	return grew
}
