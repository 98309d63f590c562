package setting

// RangeSpec declares one numeric range as (default, min, max). The
// bounds are inclusive and the default must lie within them.
type RangeSpec [3]float64

type boundedRange struct {
	def, min, max float64
}

// IndexedNumericRange is a float setting validated against an indexed
// family of inclusive ranges.
type IndexedNumericRange struct {
	ranges []boundedRange
	last   []float64
	index  int
	value  float64
}

// NewIndexedNumericRange builds the setting from one RangeSpec per
// index. Bounds are normalized so the smallest and largest of the
// triple become min and max. Group 0 starts active with its default
// applied.
func NewIndexedNumericRange(ranges []RangeSpec) *IndexedNumericRange {
	r := &IndexedNumericRange{
		ranges: make([]boundedRange, 0, len(ranges)),
		last:   make([]float64, 0, len(ranges)),
	}
	for _, spec := range ranges {
		lo, hi := spec[0], spec[0]
		for _, x := range spec {
			if x < lo {
				lo = x
			}
			if x > hi {
				hi = x
			}
		}
		r.ranges = append(r.ranges, boundedRange{def: spec[0], min: lo, max: hi})
		r.last = append(r.last, spec[0])
	}
	r.value = r.last[0]
	return r
}

// Index returns the active range index.
func (r *IndexedNumericRange) Index() int {
	return r.index
}

// SetIndex activates range i and restores that index's remembered
// value (the range default if none was ever assigned under i).
func (r *IndexedNumericRange) SetIndex(i int) error {
	if i < 0 || i >= len(r.ranges) {
		return ErrInvalidIndex
	}
	if i != r.index {
		r.index = i
		r.value = r.last[i]
	}
	return nil
}

// Criteria returns the inclusive bounds of the active range.
func (r *IndexedNumericRange) Criteria() (min, max float64) {
	g := r.ranges[r.index]
	return g.min, g.max
}

// Value returns the last validated value for the active range.
func (r *IndexedNumericRange) Value() float64 {
	return r.value
}

// SetValue validates min <= v <= max against the active range. On
// success v becomes both the current value and the remembered value
// for the active index.
func (r *IndexedNumericRange) SetValue(v float64) error {
	g := r.ranges[r.index]
	if v < g.min || v > g.max {
		return ErrInvalidValue
	}
	r.value = v
	r.last[r.index] = v
	return nil
}

// NumericRange is the single-range form of IndexedNumericRange.
type NumericRange struct {
	rng *IndexedNumericRange
}

// NewNumericRange builds the setting from one (default, min, max)
// triple.
func NewNumericRange(spec RangeSpec) *NumericRange {
	return &NumericRange{rng: NewIndexedNumericRange([]RangeSpec{spec})}
}

// Criteria returns the inclusive bounds.
func (r *NumericRange) Criteria() (min, max float64) {
	return r.rng.Criteria()
}

// Value returns the last validated value.
func (r *NumericRange) Value() float64 {
	return r.rng.Value()
}

// SetValue validates min <= v <= max.
func (r *NumericRange) SetValue(v float64) error {
	return r.rng.SetValue(v)
}
