package scope

import "github.com/scope-control/scc/setting"

// TriggerConfig is the valid-value universe a driver declares for the
// trigger subsystem. Holdoff is deliberately absent: its legal shapes
// (off, named mode, event count, duration) vary too much by
// instrument to standardize, so it passes through the dispatch
// contract verbatim.
type TriggerConfig struct {
	Modes        []string
	Sources      []string
	Types        []string
	Polarities   []string
	Levels       setting.RangeSpec
	Couplings    []string
	NoiseRejects []string
}

// Trigger holds the validated trigger settings.
type Trigger struct {
	owner       Handler
	mode        *setting.StringChoice
	source      *setting.StringChoice
	typ         *setting.StringChoice
	polarity    *setting.StringChoice
	level       *setting.NumericRange
	coupling    *setting.StringChoice
	noiseReject *setting.StringChoice
}

// NewTrigger builds the trigger owned by the driver's handler.
func NewTrigger(owner Handler, cfg TriggerConfig) *Trigger {
	return &Trigger{
		owner:       owner,
		mode:        setting.NewStringChoice(cfg.Modes),
		source:      setting.NewStringChoice(cfg.Sources),
		typ:         setting.NewStringChoice(cfg.Types),
		polarity:    setting.NewStringChoice(cfg.Polarities),
		level:       setting.NewNumericRange(cfg.Levels),
		coupling:    setting.NewStringChoice(cfg.Couplings),
		noiseReject: setting.NewStringChoice(cfg.NoiseRejects),
	}
}

// Modes returns the valid trigger sweep modes.
func (t *Trigger) Modes() []string {
	return t.mode.Criteria()
}

// Mode reads the trigger sweep mode from the instrument.
func (t *Trigger) Mode() (string, error) {
	return t.readChoice(TrigMode, t.mode)
}

// SetMode validates the trigger sweep mode and writes it.
func (t *Trigger) SetMode(mode string) error {
	return t.writeChoice(TrigMode, t.mode, mode)
}

// Sources returns the valid trigger sources.
func (t *Trigger) Sources() []string {
	return t.source.Criteria()
}

// Source reads the trigger source from the instrument.
func (t *Trigger) Source() (string, error) {
	return t.readChoice(TrigSource, t.source)
}

// SetSource validates the trigger source and writes it.
func (t *Trigger) SetSource(source string) error {
	return t.writeChoice(TrigSource, t.source, source)
}

// Types returns the valid trigger types.
func (t *Trigger) Types() []string {
	return t.typ.Criteria()
}

// Type reads the trigger type from the instrument.
func (t *Trigger) Type() (string, error) {
	return t.readChoice(TrigType, t.typ)
}

// SetType validates the trigger type and writes it.
func (t *Trigger) SetType(typ string) error {
	return t.writeChoice(TrigType, t.typ, typ)
}

// Polarities returns the valid trigger polarities.
func (t *Trigger) Polarities() []string {
	return t.polarity.Criteria()
}

// Polarity reads the trigger polarity from the instrument.
func (t *Trigger) Polarity() (string, error) {
	return t.readChoice(TrigPolarity, t.polarity)
}

// SetPolarity validates the trigger polarity and writes it.
func (t *Trigger) SetPolarity(polarity string) error {
	return t.writeChoice(TrigPolarity, t.polarity, polarity)
}

// Levels returns the inclusive trigger level bounds.
func (t *Trigger) Levels() (min, max float64) {
	return t.level.Criteria()
}

// Level reads the trigger level from the instrument.
func (t *Trigger) Level() (float64, error) {
	resp, err := readParam(t.owner, TrigLevel, 0)
	if err != nil {
		return 0, err
	}
	v, err := parseNumber(resp)
	if err != nil {
		return 0, err
	}
	if err := t.level.SetValue(v); err != nil {
		return 0, err
	}
	return t.level.Value(), nil
}

// SetLevel validates the trigger level and writes it.
func (t *Trigger) SetLevel(level float64) error {
	if err := t.level.SetValue(level); err != nil {
		return err
	}
	return writeParam(t.owner, TrigLevel, 0, formatNumber(t.level.Value()))
}

// Couplings returns the valid trigger coupling choices.
func (t *Trigger) Couplings() []string {
	return t.coupling.Criteria()
}

// Coupling reads the trigger coupling from the instrument.
func (t *Trigger) Coupling() (string, error) {
	return t.readChoice(TrigCoupling, t.coupling)
}

// SetCoupling validates the trigger coupling and writes it.
func (t *Trigger) SetCoupling(coupling string) error {
	return t.writeChoice(TrigCoupling, t.coupling, coupling)
}

// NoiseRejects returns the valid noise-reject choices.
func (t *Trigger) NoiseRejects() []string {
	return t.noiseReject.Criteria()
}

// NoiseReject reads the noise-reject setting from the instrument.
func (t *Trigger) NoiseReject() (string, error) {
	return t.readChoice(TrigNoiseReject, t.noiseReject)
}

// SetNoiseReject validates the noise-reject setting and writes it.
func (t *Trigger) SetNoiseReject(noiseReject string) error {
	return t.writeChoice(TrigNoiseReject, t.noiseReject, noiseReject)
}

// Holdoff reads the trigger holdoff. The value is handled entirely by
// the driver; the container forwards the call verbatim.
func (t *Trigger) Holdoff() (string, error) {
	return readParam(t.owner, TrigHoldoff, 0)
}

// SetHoldoff writes the trigger holdoff. The driver interprets the
// payload: a named mode string, an event count, or a duration in
// seconds, per the instrument's own vocabulary.
func (t *Trigger) SetHoldoff(holdoff any) error {
	_, err := t.owner.Dispatch(Request{Param: TrigHoldoff, Write: true, Arg: holdoff})
	return err
}

// Holdoffs returns the driver's textual enumeration of legal holdoff
// shapes.
func (t *Trigger) Holdoffs() (string, error) {
	return readParam(t.owner, TrigHoldoffs, 0)
}

func (t *Trigger) readChoice(p Param, s *setting.StringChoice) (string, error) {
	resp, err := readParam(t.owner, p, 0)
	if err != nil {
		return "", err
	}
	if err := s.SetValue(resp); err != nil {
		return "", err
	}
	return s.Value(), nil
}

func (t *Trigger) writeChoice(p Param, s *setting.StringChoice, v string) error {
	if err := s.SetValue(v); err != nil {
		return err
	}
	return writeParam(t.owner, p, 0, s.Value())
}
