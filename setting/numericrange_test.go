package setting

import (
	"errors"
	"testing"
)

func TestNumericRangeDefaultAndCriteria(t *testing.T) {
	r := NewNumericRange(RangeSpec{0.0, -5.5, 5.5})

	if got := r.Value(); got != 0.0 {
		t.Errorf("default value = %v, want 0", got)
	}
	min, max := r.Criteria()
	if min != -5.5 || max != 5.5 {
		t.Errorf("criteria = (%v, %v), want (-5.5, 5.5)", min, max)
	}
}

func TestNumericRangeBoundsInclusive(t *testing.T) {
	const eps = 1e-9
	r := NewNumericRange(RangeSpec{0.0, -5.5, 5.5})

	tests := []struct {
		value float64
		ok    bool
	}{
		{-5.5, true},
		{5.5, true},
		{0.0, true},
		{2.51, true},
		{-5.5 - eps, false},
		{5.5 + eps, false},
		{6.0, false},
	}

	for _, tt := range tests {
		err := r.SetValue(tt.value)
		if tt.ok && err != nil {
			t.Errorf("SetValue(%v) failed: %v", tt.value, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidValue) {
			t.Errorf("SetValue(%v) error = %v, want ErrInvalidValue", tt.value, err)
		}
	}
}

func TestNumericRangeRejectedAssignmentLeavesStateUnchanged(t *testing.T) {
	r := NewNumericRange(RangeSpec{0.0, -1.0, 1.0})
	if err := r.SetValue(0.5); err != nil {
		t.Fatalf("SetValue(0.5) failed: %v", err)
	}
	if err := r.SetValue(2.0); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("SetValue(2.0) error = %v, want ErrInvalidValue", err)
	}
	if got := r.Value(); got != 0.5 {
		t.Errorf("value after rejected assignment = %v, want 0.5", got)
	}
}

func TestNumericRangeUnorderedSpecNormalized(t *testing.T) {
	// Bounds come from the smallest and largest of the triple.
	r := NewNumericRange(RangeSpec{0.0, 10.0, -10.0})
	min, max := r.Criteria()
	if min != -10.0 || max != 10.0 {
		t.Errorf("criteria = (%v, %v), want (-10, 10)", min, max)
	}
}

func TestIndexedNumericRangeIndexBounds(t *testing.T) {
	r := NewIndexedNumericRange([]RangeSpec{
		{2.5, 0.0, 5.0},
		{0.0, -0.010, 0.10},
	})

	for _, bad := range []int{-1, 2} {
		if err := r.SetIndex(bad); !errors.Is(err, ErrInvalidIndex) {
			t.Errorf("SetIndex(%d) error = %v, want ErrInvalidIndex", bad, err)
		}
	}
}

func TestIndexedNumericRangePerIndexCriteria(t *testing.T) {
	r := NewIndexedNumericRange([]RangeSpec{
		{2.5, 0.0, 5.0},
		{0.0, -0.010, 0.10},
		{0.0, -0.1, 0.1},
	})

	if err := r.SetIndex(2); err != nil {
		t.Fatalf("SetIndex(2) failed: %v", err)
	}
	min, max := r.Criteria()
	if min != -0.1 || max != 0.1 {
		t.Errorf("criteria under index 2 = (%v, %v), want (-0.1, 0.1)", min, max)
	}

	if err := r.SetValue(0.05); err != nil {
		t.Errorf("SetValue(0.05) under index 2 failed: %v", err)
	}
	if err := r.SetValue(-0.11); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("SetValue(-0.11) under index 2 error = %v, want ErrInvalidValue", err)
	}
}

func TestIndexedNumericRangeLastValuePerIndex(t *testing.T) {
	r := NewIndexedNumericRange([]RangeSpec{
		{2.5, 0.0, 5.0},
		{0.0, -1.0, 1.0},
	})

	if err := r.SetValue(4.0); err != nil {
		t.Fatalf("SetValue(4.0) failed: %v", err)
	}
	if err := r.SetIndex(1); err != nil {
		t.Fatalf("SetIndex(1) failed: %v", err)
	}
	if got := r.Value(); got != 0.0 {
		t.Errorf("value after first switch to index 1 = %v, want default 0", got)
	}
	if err := r.SetValue(-0.5); err != nil {
		t.Fatalf("SetValue(-0.5) failed: %v", err)
	}

	if err := r.SetIndex(0); err != nil {
		t.Fatalf("SetIndex(0) failed: %v", err)
	}
	if got := r.Value(); got != 4.0 {
		t.Errorf("value restored under index 0 = %v, want 4", got)
	}
	if err := r.SetIndex(1); err != nil {
		t.Fatalf("SetIndex(1) failed: %v", err)
	}
	if got := r.Value(); got != -0.5 {
		t.Errorf("value restored under index 1 = %v, want -0.5", got)
	}
}
