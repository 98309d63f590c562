package scope

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/scope-control/scc/setting"
)

var channelNumPattern = regexp.MustCompile(`([0-9]+)$`)

// ChannelConfig is the valid-value universe a driver declares for one
// vertical channel. Scales and Offsets are indexed by the position of
// the active attenuation in Attens: changing attenuation changes
// which scale group and offset range apply.
type ChannelConfig struct {
	Units      []string
	Attens     []string
	Scales     [][]setting.Pair
	Offsets    []setting.RangeSpec
	Bandwidths []string
	Couplings  []string
}

// Channel holds the validated settings of one vertical channel. It is
// constructed once by the concrete driver and mutated only through
// its accessors. The owner reference exists solely to reach the
// dispatch contract.
type Channel struct {
	name  string
	num   int
	owner Handler

	state     *setting.StringChoice
	visible   *setting.StringChoice
	unit      *setting.StringChoice
	atten     *setting.StringChoice
	scale     *setting.IndexedLabeledChoice
	offset    *setting.IndexedNumericRange
	bandwidth *setting.StringChoice
	coupling  *setting.StringChoice
}

// NewChannel builds a channel named like "CH1" owned by the driver's
// handler. The trailing digits of the name become the 1-based channel
// number carried on every dispatch. Construction trusts the driver's
// configuration; validation begins with the first accessor call.
func NewChannel(name string, owner Handler, cfg ChannelConfig) *Channel {
	num := 0
	if m := channelNumPattern.FindStringSubmatch(name); m != nil {
		num, _ = strconv.Atoi(m[1])
	}
	return &Channel{
		name:      name,
		num:       num,
		owner:     owner,
		state:     setting.NewStringChoice([]string{"OFF", "ON"}),
		visible:   setting.NewStringChoice([]string{"ON", "OFF"}),
		unit:      setting.NewStringChoice(cfg.Units),
		atten:     setting.NewStringChoice(cfg.Attens),
		scale:     setting.NewIndexedLabeledChoice(cfg.Scales),
		offset:    setting.NewIndexedNumericRange(cfg.Offsets),
		bandwidth: setting.NewStringChoice(cfg.Bandwidths),
		coupling:  setting.NewStringChoice(cfg.Couplings),
	}
}

// Name returns the channel name, ex/ "CH1".
func (c *Channel) Name() string {
	return c.name
}

// Num returns the 1-based channel number.
func (c *Channel) Num() int {
	return c.num
}

// State reads the channel on/off state from the instrument.
func (c *Channel) State() (string, error) {
	return c.readChoice(ChanState, c.state)
}

// SetState validates state ("ON"/"OFF") and writes it.
func (c *Channel) SetState(state string) error {
	return c.writeChoice(ChanState, c.state, state)
}

// Visible reads the trace visibility from the instrument.
func (c *Channel) Visible() (string, error) {
	return c.readChoice(ChanVisible, c.visible)
}

// SetVisible validates visibility ("ON"/"OFF") and writes it.
func (c *Channel) SetVisible(visible string) error {
	return c.writeChoice(ChanVisible, c.visible, visible)
}

// Units returns the valid vertical units.
func (c *Channel) Units() []string {
	return c.unit.Criteria()
}

// Unit reads the vertical unit from the instrument.
func (c *Channel) Unit() (string, error) {
	return c.readChoice(ChanUnit, c.unit)
}

// SetUnit validates the vertical unit and writes it.
func (c *Channel) SetUnit(unit string) error {
	return c.writeChoice(ChanUnit, c.unit, unit)
}

// Attens returns the valid probe attenuation choices.
func (c *Channel) Attens() []string {
	return c.atten.Criteria()
}

// Atten reads the probe attenuation from the instrument and
// re-indexes the scale and offset settings to the reported choice.
func (c *Channel) Atten() (string, error) {
	v, err := c.readChoice(ChanAtten, c.atten)
	if err != nil {
		return "", err
	}
	if err := c.syncAttenIndex(); err != nil {
		return "", err
	}
	return v, nil
}

// SetAtten validates the probe attenuation, re-indexes the scale and
// offset settings to the new choice, and writes it.
func (c *Channel) SetAtten(atten string) error {
	if err := c.atten.SetValue(atten); err != nil {
		return err
	}
	if err := c.syncAttenIndex(); err != nil {
		return err
	}
	return writeParam(c.owner, ChanAtten, c.num, c.atten.Value())
}

// syncAttenIndex activates the scale group and offset range belonging
// to the current attenuation choice.
func (c *Channel) syncAttenIndex() error {
	idx := indexOf(c.atten.Criteria(), c.atten.Value())
	if idx < 0 {
		return setting.ErrInvalidValue
	}
	if err := c.scale.SetIndex(idx); err != nil {
		return err
	}
	return c.offset.SetIndex(idx)
}

// Scales returns the scale labels valid under the active attenuation.
func (c *Channel) Scales() []string {
	return c.scale.Criteria()
}

// Scale reads the vertical scale from the instrument.
func (c *Channel) Scale() (string, error) {
	resp, err := readParam(c.owner, ChanScale, c.num)
	if err != nil {
		return "", err
	}
	if err := c.scale.Set(resp); err != nil {
		return "", err
	}
	return c.scale.Value(), nil
}

// SetScale validates the vertical scale and writes it. The value may
// be a scale label, a volts-per-division number, or a setting.Step
// moving the scale within the active group.
func (c *Channel) SetScale(scale any) error {
	if err := c.scale.Set(scale); err != nil {
		return err
	}
	return writeParam(c.owner, ChanScale, c.num, c.scale.Value())
}

// Offsets returns the inclusive offset bounds under the active
// attenuation.
func (c *Channel) Offsets() (min, max float64) {
	return c.offset.Criteria()
}

// Offset reads the vertical offset from the instrument.
func (c *Channel) Offset() (float64, error) {
	resp, err := readParam(c.owner, ChanOffset, c.num)
	if err != nil {
		return 0, err
	}
	v, err := parseNumber(resp)
	if err != nil {
		return 0, err
	}
	if err := c.offset.SetValue(v); err != nil {
		return 0, err
	}
	return c.offset.Value(), nil
}

// SetOffset validates the vertical offset and writes it.
func (c *Channel) SetOffset(offset float64) error {
	if err := c.offset.SetValue(offset); err != nil {
		return err
	}
	return writeParam(c.owner, ChanOffset, c.num, formatNumber(c.offset.Value()))
}

// Bandwidths returns the valid bandwidth-limit choices.
func (c *Channel) Bandwidths() []string {
	return c.bandwidth.Criteria()
}

// Bandwidth reads the bandwidth limit from the instrument.
func (c *Channel) Bandwidth() (string, error) {
	return c.readChoice(ChanBandwidth, c.bandwidth)
}

// SetBandwidth validates the bandwidth limit and writes it.
func (c *Channel) SetBandwidth(bandwidth string) error {
	return c.writeChoice(ChanBandwidth, c.bandwidth, bandwidth)
}

// Couplings returns the valid input coupling choices.
func (c *Channel) Couplings() []string {
	return c.coupling.Criteria()
}

// Coupling reads the input coupling from the instrument.
func (c *Channel) Coupling() (string, error) {
	return c.readChoice(ChanCoupling, c.coupling)
}

// SetCoupling validates the input coupling and writes it.
func (c *Channel) SetCoupling(coupling string) error {
	return c.writeChoice(ChanCoupling, c.coupling, coupling)
}

// readChoice round-trips a choice parameter: fetch the authoritative
// value from the instrument, validate it into s, return the canonical
// label. A read never serves a stale cache.
func (c *Channel) readChoice(p Param, s *setting.StringChoice) (string, error) {
	resp, err := readParam(c.owner, p, c.num)
	if err != nil {
		return "", err
	}
	if err := s.SetValue(resp); err != nil {
		return "", err
	}
	return s.Value(), nil
}

// writeChoice validates v into s and forwards the canonical label.
// A validation failure never reaches the instrument.
func (c *Channel) writeChoice(p Param, s *setting.StringChoice, v string) error {
	if err := s.SetValue(v); err != nil {
		return err
	}
	return writeParam(c.owner, p, c.num, s.Value())
}

// indexOf returns the position of v in list, or -1.
func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}

// formatNumber renders a float the way it goes on the wire.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'G', -1, 64)
}

// parseNumber parses instrument-reported numeric text. Unparseable
// text counts as a failed validation, not a transport error.
func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, setting.ErrInvalidValue)
	}
	return v, nil
}
