package setting

import (
	"math"
	"strconv"
	"strings"
)

// relTol is the relative tolerance used to equate a numeric input to
// a labeled numeric option: |input - option| / |option| <= relTol.
const relTol = 1.0e-6

// Pair binds a display label to its numeric value.
type Pair struct {
	Label string
	Num   float64
}

// IndexedLabeledChoice is a choice setting whose labels carry numeric
// values, validated against an indexed family of pair groups. An
// assignment may be a label (matched case-insensitively), a number
// (matched within relative tolerance 1e-6), or a Step shifting the
// current selection within the active group. The first pair of each
// group is that group's default.
//
// A pair whose numeric value is exactly 0 matches only an input of
// exactly 0; two zero-valued pairs in the same group are therefore
// indistinguishable by numeric assignment.
type IndexedLabeledChoice struct {
	labels [][]string
	nums   [][]float64
	last   []string
	index  int
	value  string
}

// NewIndexedLabeledChoice builds the setting from one pair group per
// index. Each group must be non-empty; group 0 starts active with its
// default applied.
func NewIndexedLabeledChoice(groups [][]Pair) *IndexedLabeledChoice {
	l := &IndexedLabeledChoice{
		labels: make([][]string, 0, len(groups)),
		nums:   make([][]float64, 0, len(groups)),
		last:   make([]string, 0, len(groups)),
	}
	for _, g := range groups {
		labels := make([]string, 0, len(g))
		nums := make([]float64, 0, len(g))
		for _, p := range g {
			labels = append(labels, p.Label)
			nums = append(nums, p.Num)
		}
		l.labels = append(l.labels, labels)
		l.nums = append(l.nums, nums)
		l.last = append(l.last, labels[0])
	}
	l.value = l.last[0]
	return l
}

// Index returns the active group index.
func (l *IndexedLabeledChoice) Index() int {
	return l.index
}

// SetIndex activates group i and restores that group's remembered
// value (its default if no value was ever assigned under i).
func (l *IndexedLabeledChoice) SetIndex(i int) error {
	if i < 0 || i >= len(l.labels) {
		return ErrInvalidIndex
	}
	if i != l.index {
		l.index = i
		l.value = l.last[i]
	}
	return nil
}

// Criteria returns the labels valid for the active group.
func (l *IndexedLabeledChoice) Criteria() []string {
	return l.labels[l.index]
}

// NumericCriteria returns the numeric values of the active group, in
// label order.
func (l *IndexedLabeledChoice) NumericCriteria() []float64 {
	return l.nums[l.index]
}

// Value returns the last validated value for the active group.
func (l *IndexedLabeledChoice) Value() string {
	return l.value
}

// Set validates v against the active group and adopts the matching
// label. v may be a string (label match first, then numeric match of
// its parsed value), any integer or float type (numeric match within
// relative tolerance), or a Step. Any other type is
// ErrInvalidValueType.
func (l *IndexedLabeledChoice) Set(v any) error {
	switch x := v.(type) {
	case Step:
		return l.shift(int(x))
	case string:
		for i, s := range l.labels[l.index] {
			if strings.EqualFold(x, s) {
				l.adopt(i)
				return nil
			}
		}
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return ErrInvalidValue
		}
		return l.setNumeric(f)
	case float64:
		return l.setNumeric(x)
	case float32:
		return l.setNumeric(float64(x))
	case int:
		return l.setNumeric(float64(x))
	case int64:
		return l.setNumeric(float64(x))
	default:
		return ErrInvalidValueType
	}
}

// adopt records position i of the active group as the current and
// remembered value.
func (l *IndexedLabeledChoice) adopt(i int) {
	l.value = l.labels[l.index][i]
	l.last[l.index] = l.value
}

// shift resolves the current value's position in the active group,
// moves it by n positions, and clamps to the group bounds. Failing to
// locate the current value means the cached value and the group are
// inconsistent.
func (l *IndexedLabeledChoice) shift(n int) error {
	g := l.labels[l.index]
	cur := -1
	for i, s := range g {
		if s == l.value {
			cur = i
			break
		}
	}
	if cur < 0 {
		return ErrInvalidValue
	}
	cur += n
	if cur < 0 {
		cur = 0
	} else if cur >= len(g) {
		cur = len(g) - 1
	}
	l.adopt(cur)
	return nil
}

// setNumeric matches v against the active group's numeric values
// within relative tolerance. A zero-valued option matches only an
// exact zero input (the tolerance formula divides by the option).
func (l *IndexedLabeledChoice) setNumeric(v float64) error {
	for i, f := range l.nums[l.index] {
		if f == 0.0 {
			if v == 0.0 {
				l.adopt(i)
				return nil
			}
			continue
		}
		if math.Abs((v-f)/f) <= relTol {
			l.adopt(i)
			return nil
		}
	}
	return ErrInvalidValue
}

// LabeledChoice is the single-group form of IndexedLabeledChoice.
type LabeledChoice struct {
	list *IndexedLabeledChoice
}

// NewLabeledChoice builds the setting from one non-empty pair list.
// The first pair is the default.
func NewLabeledChoice(pairs []Pair) *LabeledChoice {
	return &LabeledChoice{list: NewIndexedLabeledChoice([][]Pair{pairs})}
}

// Criteria returns the valid labels.
func (l *LabeledChoice) Criteria() []string {
	return l.list.Criteria()
}

// NumericCriteria returns the numeric values in label order.
func (l *LabeledChoice) NumericCriteria() []float64 {
	return l.list.NumericCriteria()
}

// Value returns the last validated value.
func (l *LabeledChoice) Value() string {
	return l.list.Value()
}

// Set validates v as a label, a number, or a Step.
func (l *LabeledChoice) Set(v any) error {
	return l.list.Set(v)
}
