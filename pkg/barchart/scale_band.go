package barchart

// BandScale maps a discrete set of keys onto evenly sized, padded bands of a
// continuous range. Repeated keys share the slot of their first occurrence.
type BandScale struct {
	keys      []string
	index     map[string]int
	rng       [2]float64
	padding   float64
	align     float64
	step      float64
	bandwidth float64
	starts    []float64
}

// NewBandScale uses the same padding on the inner gaps and the outer edges.
func NewBandScale(keys []string, rng [2]float64, padding float64) *BandScale {
	b := &BandScale{
		index:   make(map[string]int, len(keys)),
		rng:     rng,
		padding: padding,
		align:   0.5,
	}
	for _, key := range keys {
		if _, ok := b.index[key]; ok {
			continue
		}
		b.index[key] = len(b.keys)
		b.keys = append(b.keys, key)
	}
	b.rescale()
	return b
}

func (b *BandScale) rescale() {
	n := float64(len(b.keys))
	r0, r1 := b.rng[0], b.rng[1]
	reverse := r1 < r0
	start, stop := r0, r1
	if reverse {
		start, stop = r1, r0
	}
	b.step = (stop - start) / max(1, n-b.padding+b.padding*2)
	start += (stop - start - b.step*(n-b.padding)) * b.align
	b.bandwidth = b.step * (1 - b.padding)
	b.starts = make([]float64, len(b.keys))
	for i := range b.keys {
		b.starts[i] = start + b.step*float64(i)
	}
	if reverse {
		for i, j := 0, len(b.starts)-1; i < j; i, j = i+1, j-1 {
			b.starts[i], b.starts[j] = b.starts[j], b.starts[i]
		}
	}
}

// Scale returns the start of the band for key.
func (b *BandScale) Scale(key string) (float64, bool) {
	i, ok := b.index[key]
	if !ok {
		return 0, false
	}
	return b.starts[i], true
}

func (b *BandScale) Bandwidth() float64 { return b.bandwidth }

func (b *BandScale) Step() float64 { return b.step }

// Keys returns the de-duplicated domain in insertion order.
func (b *BandScale) Keys() []string {
	keys := make([]string, len(b.keys))
	copy(keys, b.keys)
	return keys
}

func (b *BandScale) Range() [2]float64 { return b.rng }
