package setting

import "strings"

// IndexedStringChoice is a string setting validated against an indexed
// family of label groups. The first label of each group is that
// group's default. Matching is case-insensitive; the stored value is
// always the group's own spelling of the label.
type IndexedStringChoice struct {
	groups [][]string
	last   []string
	index  int
	value  string
}

// NewIndexedStringChoice builds the setting from one label group per
// index. Each group must be non-empty; group 0 starts active with its
// default applied.
func NewIndexedStringChoice(groups [][]string) *IndexedStringChoice {
	s := &IndexedStringChoice{
		groups: make([][]string, 0, len(groups)),
		last:   make([]string, 0, len(groups)),
	}
	for _, g := range groups {
		s.groups = append(s.groups, append([]string(nil), g...))
		s.last = append(s.last, g[0])
	}
	s.value = s.last[0]
	return s
}

// Index returns the active group index.
func (s *IndexedStringChoice) Index() int {
	return s.index
}

// SetIndex activates group i and restores that group's remembered
// value (its default if no value was ever assigned under i).
func (s *IndexedStringChoice) SetIndex(i int) error {
	if i < 0 || i >= len(s.groups) {
		return ErrInvalidIndex
	}
	if i != s.index {
		s.index = i
		s.value = s.last[i]
	}
	return nil
}

// Criteria returns the labels valid for the active group.
func (s *IndexedStringChoice) Criteria() []string {
	return s.groups[s.index]
}

// Value returns the last validated value for the active group.
func (s *IndexedStringChoice) Value() string {
	return s.value
}

// SetValue validates v against the active group, case-insensitively.
// On success the matched label becomes both the current value and the
// remembered value for the active index.
func (s *IndexedStringChoice) SetValue(v string) error {
	for _, c := range s.groups[s.index] {
		if strings.EqualFold(v, c) {
			s.value = c
			s.last[s.index] = c
			return nil
		}
	}
	return ErrInvalidValue
}

// StringChoice is the single-group form of IndexedStringChoice.
type StringChoice struct {
	list *IndexedStringChoice
}

// NewStringChoice builds the setting from one non-empty label list.
// The first label is the default.
func NewStringChoice(values []string) *StringChoice {
	return &StringChoice{list: NewIndexedStringChoice([][]string{values})}
}

// Criteria returns the valid labels.
func (s *StringChoice) Criteria() []string {
	return s.list.Criteria()
}

// Value returns the last validated value.
func (s *StringChoice) Value() string {
	return s.list.Value()
}

// SetValue validates v case-insensitively against the label list.
func (s *StringChoice) SetValue(v string) error {
	return s.list.SetValue(v)
}
