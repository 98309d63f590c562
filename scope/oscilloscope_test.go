package scope_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/scope-control/scc/driver/fake"
	"github.com/scope-control/scc/scope"
	"github.com/scope-control/scc/setting"
)

// newTestScope builds a four-channel instrument around a scripted
// handler, mimicking what a concrete driver does at construction.
func newTestScope(t *testing.T) (*scope.Oscilloscope, *fake.Handler) {
	t.Helper()
	h := fake.New()
	o := scope.NewOscilloscope(h, []string{"YT", "XY", "ROLL"})
	for n := 1; n <= 4; n++ {
		o.AddChannel(scope.NewChannel(fmt.Sprintf("CH%d", n), h, testChannelConfig()))
	}
	o.SetTimebase(scope.NewTimebase(h, testTimebaseConfig()))
	o.SetTrigger(scope.NewTrigger(h, testTriggerConfig()))
	return o, h
}

func TestOscilloscopeChannelLookupForms(t *testing.T) {
	o, _ := newTestScope(t)

	want := o.Channel(3)
	if want == nil {
		t.Fatal("Channel(3) = nil on a four-channel instrument")
	}

	for _, id := range []any{"3", "C3", "CH3", "CHAN3", "CHANNEL3", "ch3", "channel3", 3} {
		if got := o.Channel(id); got != want {
			t.Errorf("Channel(%v) = %v, want the CH3 container", id, got)
		}
	}
}

func TestOscilloscopeChannelLookupRejects(t *testing.T) {
	o, _ := newTestScope(t)

	for _, id := range []any{"CH5", "5", 5, 0, -1, "X1", "CH", "", 3.0, nil} {
		if got := o.Channel(id); got != nil {
			t.Errorf("Channel(%v) = %v, want nil", id, got)
		}
	}
}

func TestOscilloscopeChannelNames(t *testing.T) {
	o, _ := newTestScope(t)

	if o.NumChannels() != 4 {
		t.Fatalf("NumChannels() = %d, want 4", o.NumChannels())
	}
	names := o.Channels()
	want := []string{"CH1", "CH2", "CH3", "CH4"}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("Channels()[%d] = %q, want %q", i, names[i], n)
		}
	}
}

func TestOscilloscopeMode(t *testing.T) {
	o, h := newTestScope(t)

	if err := o.SetMode("xy"); err != nil {
		t.Fatalf("SetMode(\"xy\") failed: %v", err)
	}
	if got := h.LastRequest().Value; got != "XY" {
		t.Errorf("mode wire value = %q, want XY", got)
	}

	if err := o.SetMode("SLIDE"); !errors.Is(err, setting.ErrInvalidValue) {
		t.Errorf("SetMode(\"SLIDE\") error = %v, want ErrInvalidValue", err)
	}

	h.Seed(scope.Mode, 0, "ROLL")
	got, err := o.Mode()
	if err != nil {
		t.Fatalf("Mode() failed: %v", err)
	}
	if got != "ROLL" {
		t.Errorf("Mode() = %q, want ROLL", got)
	}
}

// Attenuation gates which scale labels a channel accepts: a label
// valid under one probe factor must stop validating once the probe
// factor changes, and the rejection must not reach the handler.
func TestOscilloscopeAttenGatesScaleEndToEnd(t *testing.T) {
	o, h := newTestScope(t)
	ch := o.Channel("CH2")
	if ch == nil {
		t.Fatal("Channel(\"CH2\") = nil")
	}

	if err := ch.SetAtten("10X"); err != nil {
		t.Fatalf("SetAtten(\"10X\") failed: %v", err)
	}
	if err := ch.SetScale("2"); err != nil {
		t.Fatalf("SetScale(\"2\") under 10X failed: %v", err)
	}
	if req := h.LastRequest(); req.Channel != 2 || req.Value != "2" {
		t.Fatalf("last request = %+v, want scale write of \"2\" on channel 2", req)
	}

	if err := ch.SetAtten("1X"); err != nil {
		t.Fatalf("SetAtten(\"1X\") failed: %v", err)
	}
	sent := len(h.Requests)
	if err := ch.SetScale("2"); !errors.Is(err, setting.ErrInvalidValue) {
		t.Fatalf("SetScale(\"2\") under 1X error = %v, want ErrInvalidValue", err)
	}
	if len(h.Requests) != sent {
		t.Errorf("rejected scale write reached the handler")
	}

	// Other channels keep their own attenuation state.
	other := o.Channel(1)
	if err := other.SetScale("100M"); err != nil {
		t.Errorf("CH1 SetScale(\"100M\") failed: %v", err)
	}
}

func TestOscilloscopeRefreshReadsEveryParameter(t *testing.T) {
	o, h := newTestScope(t)

	for n := 1; n <= 4; n++ {
		h.Seed(scope.ChanState, n, "ON")
		h.Seed(scope.ChanVisible, n, "ON")
		h.Seed(scope.ChanUnit, n, "V")
		h.Seed(scope.ChanAtten, n, "1X")
		h.Seed(scope.ChanScale, n, "200M")
		h.Seed(scope.ChanOffset, n, "0")
		h.Seed(scope.ChanBandwidth, n, "FULL")
		h.Seed(scope.ChanCoupling, n, "DC")
	}
	h.Seed(scope.TimeScale, 0, "2U")
	h.Seed(scope.TimeDelay, 0, "0")
	h.Seed(scope.TrigMode, 0, "AUTO")
	h.Seed(scope.TrigSource, 0, "CH1")
	h.Seed(scope.TrigType, 0, "EDGE")
	h.Seed(scope.TrigPolarity, 0, "RISING")
	h.Seed(scope.TrigLevel, 0, "0")
	h.Seed(scope.TrigCoupling, 0, "DC")
	h.Seed(scope.TrigNoiseReject, 0, "OFF")

	if err := o.Refresh(); err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}

	// After a refresh the containers hold the hardware's values.
	got, err := o.Channel(1).Scale()
	if err != nil {
		t.Fatalf("Scale() failed: %v", err)
	}
	if got != "200M" {
		t.Errorf("Scale() after refresh = %q, want 200M", got)
	}
}

func TestOscilloscopeRefreshStopsOnError(t *testing.T) {
	o, h := newTestScope(t)
	wantErr := errors.New("timeout")
	h.FailWith(scope.ChanState, wantErr)

	if err := o.Refresh(); !errors.Is(err, wantErr) {
		t.Errorf("Refresh() error = %v, want %v", err, wantErr)
	}
}

func TestOscilloscopeInfo(t *testing.T) {
	o, _ := newTestScope(t)
	o.SetInfo("Siglent Technologies", "SDS2354X HD", "SDS2EEEC7R0985", "3.8.12.1.1.3.8")

	if o.Manufacturer() != "Siglent Technologies" {
		t.Errorf("Manufacturer() = %q", o.Manufacturer())
	}
	if o.Model() != "SDS2354X HD" {
		t.Errorf("Model() = %q", o.Model())
	}
	if o.Serial() != "SDS2EEEC7R0985" {
		t.Errorf("Serial() = %q", o.Serial())
	}
	if o.Firmware() != "3.8.12.1.1.3.8" {
		t.Errorf("Firmware() = %q", o.Firmware())
	}
}
