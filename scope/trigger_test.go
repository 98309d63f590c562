package scope_test

import (
	"errors"
	"testing"

	"github.com/scope-control/scc/driver/fake"
	"github.com/scope-control/scc/scope"
	"github.com/scope-control/scc/setting"
)

func testTriggerConfig() scope.TriggerConfig {
	return scope.TriggerConfig{
		Modes:        []string{"AUTO", "NORM", "SINGLE"},
		Sources:      []string{"CH1", "CH2", "CH3", "CH4", "LINE"},
		Types:        []string{"EDGE"},
		Polarities:   []string{"RISING", "FALLING", "ALTERNATE"},
		Levels:       setting.RangeSpec{0, -4.1, 4.1},
		Couplings:    []string{"DC", "AC", "LFREJECT", "HFREJECT"},
		NoiseRejects: []string{"OFF", "ON"},
	}
}

func newTestTrigger(t *testing.T) (*scope.Trigger, *fake.Handler) {
	t.Helper()
	h := fake.New()
	return scope.NewTrigger(h, testTriggerConfig()), h
}

func TestTriggerChoiceWrites(t *testing.T) {
	tr, h := newTestTrigger(t)

	cases := []struct {
		name  string
		set   func(string) error
		in    string
		param scope.Param
		want  string
	}{
		{"mode", tr.SetMode, "norm", scope.TrigMode, "NORM"},
		{"source", tr.SetSource, "ch2", scope.TrigSource, "CH2"},
		{"type", tr.SetType, "edge", scope.TrigType, "EDGE"},
		{"polarity", tr.SetPolarity, "falling", scope.TrigPolarity, "FALLING"},
		{"coupling", tr.SetCoupling, "lfreject", scope.TrigCoupling, "LFREJECT"},
		{"noiseReject", tr.SetNoiseReject, "on", scope.TrigNoiseReject, "ON"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.set(tc.in); err != nil {
				t.Fatalf("set %q failed: %v", tc.in, err)
			}
			req := h.LastRequest()
			if req.Param != tc.param || !req.Write || req.Value != tc.want {
				t.Errorf("last request = %+v, want %v write of %q", req, tc.param, tc.want)
			}
			if req.Channel != 0 {
				t.Errorf("request channel = %d, want 0", req.Channel)
			}
		})
	}
}

func TestTriggerRejectedWriteNeverDispatches(t *testing.T) {
	tr, h := newTestTrigger(t)

	if err := tr.SetSource("CH9"); !errors.Is(err, setting.ErrInvalidValue) {
		t.Fatalf("SetSource(\"CH9\") error = %v, want ErrInvalidValue", err)
	}
	if err := tr.SetLevel(5.0); !errors.Is(err, setting.ErrInvalidValue) {
		t.Fatalf("SetLevel(5.0) error = %v, want ErrInvalidValue", err)
	}
	if len(h.Requests) != 0 {
		t.Errorf("handler saw %d requests after rejected writes, want 0", len(h.Requests))
	}
}

func TestTriggerLevelRoundTrip(t *testing.T) {
	tr, h := newTestTrigger(t)

	if err := tr.SetLevel(-2.5); err != nil {
		t.Fatalf("SetLevel(-2.5) failed: %v", err)
	}
	if got := h.LastRequest().Value; got != "-2.5" {
		t.Errorf("wire value = %q, want -2.5", got)
	}

	h.Seed(scope.TrigLevel, 0, "1.25E+00")
	got, err := tr.Level()
	if err != nil {
		t.Fatalf("Level() failed: %v", err)
	}
	if got != 1.25 {
		t.Errorf("Level() = %v, want 1.25", got)
	}
}

func TestTriggerHoldoffPassesThroughVerbatim(t *testing.T) {
	tr, h := newTestTrigger(t)

	// The container does not validate holdoff payloads; the driver
	// owns that vocabulary.
	for _, arg := range []any{"LAST_TRIG", 42, 0.0008, nil} {
		if err := tr.SetHoldoff(arg); err != nil {
			t.Fatalf("SetHoldoff(%v) failed: %v", arg, err)
		}
		req := h.LastRequest()
		if req.Param != scope.TrigHoldoff || !req.Write {
			t.Fatalf("last request = %+v, want TrigHoldoff write", req)
		}
		if req.Arg != arg {
			t.Errorf("request arg = %v, want %v", req.Arg, arg)
		}
	}

	h.Seed(scope.TrigHoldoff, 0, "EVENTS 42")
	got, err := tr.Holdoff()
	if err != nil {
		t.Fatalf("Holdoff() failed: %v", err)
	}
	if got != "EVENTS 42" {
		t.Errorf("Holdoff() = %q, want the driver's verbatim text", got)
	}
}

func TestTriggerCriteriaAccessors(t *testing.T) {
	tr, _ := newTestTrigger(t)

	if got := tr.Modes(); len(got) != 3 || got[0] != "AUTO" {
		t.Errorf("Modes() = %v", got)
	}
	if got := tr.Sources(); len(got) != 5 || got[4] != "LINE" {
		t.Errorf("Sources() = %v", got)
	}
	if min, max := tr.Levels(); min != -4.1 || max != 4.1 {
		t.Errorf("Levels() = (%v, %v), want (-4.1, 4.1)", min, max)
	}
}
