package scope

import "github.com/scope-control/scc/setting"

// TimebaseConfig is the valid-value universe a driver declares for
// the horizontal timebase. Delays is indexed identically to Scales so
// the delay bounds can vary per time-scale setting.
type TimebaseConfig struct {
	Scales []setting.Pair
	Delays []setting.RangeSpec
}

// Timebase holds the validated horizontal settings.
type Timebase struct {
	owner Handler
	scale *setting.LabeledChoice
	delay *setting.IndexedNumericRange
}

// NewTimebase builds the timebase owned by the driver's handler.
func NewTimebase(owner Handler, cfg TimebaseConfig) *Timebase {
	return &Timebase{
		owner: owner,
		scale: setting.NewLabeledChoice(cfg.Scales),
		delay: setting.NewIndexedNumericRange(cfg.Delays),
	}
}

// Scales returns the valid time-scale labels.
func (t *Timebase) Scales() []string {
	return t.scale.Criteria()
}

// Scale reads the time scale from the instrument.
func (t *Timebase) Scale() (string, error) {
	resp, err := readParam(t.owner, TimeScale, 0)
	if err != nil {
		return "", err
	}
	if err := t.scale.Set(resp); err != nil {
		return "", err
	}
	if err := t.syncDelayIndex(); err != nil {
		return "", err
	}
	return t.scale.Value(), nil
}

// SetScale validates the time scale and writes it. The value may be a
// scale label, a seconds-per-division number, or a setting.Step.
func (t *Timebase) SetScale(scale any) error {
	if err := t.scale.Set(scale); err != nil {
		return err
	}
	if err := t.syncDelayIndex(); err != nil {
		return err
	}
	return writeParam(t.owner, TimeScale, 0, t.scale.Value())
}

// syncDelayIndex activates the delay range belonging to the current
// time-scale position.
func (t *Timebase) syncDelayIndex() error {
	idx := indexOf(t.scale.Criteria(), t.scale.Value())
	if idx < 0 {
		return setting.ErrInvalidValue
	}
	return t.delay.SetIndex(idx)
}

// Delays returns the inclusive delay bounds under the active time
// scale.
func (t *Timebase) Delays() (min, max float64) {
	return t.delay.Criteria()
}

// Delay reads the horizontal delay from the instrument.
func (t *Timebase) Delay() (float64, error) {
	resp, err := readParam(t.owner, TimeDelay, 0)
	if err != nil {
		return 0, err
	}
	v, err := parseNumber(resp)
	if err != nil {
		return 0, err
	}
	if err := t.delay.SetValue(v); err != nil {
		return 0, err
	}
	return t.delay.Value(), nil
}

// SetDelay validates the horizontal delay and writes it.
func (t *Timebase) SetDelay(delay float64) error {
	if err := t.delay.SetValue(delay); err != nil {
		return err
	}
	return writeParam(t.owner, TimeDelay, 0, formatNumber(t.delay.Value()))
}
