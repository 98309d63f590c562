package scope

import (
	"regexp"
	"strconv"

	"github.com/scope-control/scc/setting"
)

// Valid channel identifier forms: "3", "C3", "CH3", "CHAN3",
// "CHANNEL3", case-insensitive.
var channelIDPattern = regexp.MustCompile(`(?i)^(?:CH?|CHAN(?:NEL)?)?([0-9]+)$`)

// Oscilloscope is the instrument abstraction a concrete driver builds
// during its own construction: a channel set, one timebase, one
// trigger, and the acquisition mode, all dispatching through the
// driver's Handler.
type Oscilloscope struct {
	Info

	handler  Handler
	mode     *setting.StringChoice
	channels []*Channel
	timebase *Timebase
	trigger  *Trigger
}

// NewOscilloscope builds the abstraction around the driver's handler.
// The driver adds channels and sets the timebase and trigger before
// handing the instrument to application code.
func NewOscilloscope(handler Handler, modes []string) *Oscilloscope {
	return &Oscilloscope{
		handler: handler,
		mode:    setting.NewStringChoice(modes),
	}
}

// AddChannel appends an initialized channel to the channel set.
func (o *Oscilloscope) AddChannel(ch *Channel) {
	o.channels = append(o.channels, ch)
}

// SetTimebase installs the initialized timebase.
func (o *Oscilloscope) SetTimebase(tb *Timebase) {
	o.timebase = tb
}

// SetTrigger installs the initialized trigger.
func (o *Oscilloscope) SetTrigger(tr *Trigger) {
	o.trigger = tr
}

// Channel resolves a channel identifier to its Channel. The
// identifier may be a 1-based integer or a string of the form "3",
// "C3", "CH3", "CHAN3", "CHANNEL3" (case-insensitive). Malformed or
// out-of-range identifiers resolve to nil; callers must check.
func (o *Oscilloscope) Channel(id any) *Channel {
	switch v := id.(type) {
	case int:
		return o.channelByNumber(v)
	case string:
		m := channelIDPattern.FindStringSubmatch(v)
		if m == nil {
			return nil
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil
		}
		return o.channelByNumber(n)
	default:
		return nil
	}
}

func (o *Oscilloscope) channelByNumber(n int) *Channel {
	if n >= 1 && n <= len(o.channels) {
		return o.channels[n-1]
	}
	return nil
}

// Channels returns the ordered channel names.
func (o *Oscilloscope) Channels() []string {
	names := make([]string, 0, len(o.channels))
	for _, ch := range o.channels {
		names = append(names, ch.Name())
	}
	return names
}

// NumChannels returns the number of channels.
func (o *Oscilloscope) NumChannels() int {
	return len(o.channels)
}

// Timebase returns the timebase container.
func (o *Oscilloscope) Timebase() *Timebase {
	return o.timebase
}

// Trigger returns the trigger container.
func (o *Oscilloscope) Trigger() *Trigger {
	return o.trigger
}

// Modes returns the valid acquisition modes.
func (o *Oscilloscope) Modes() []string {
	return o.mode.Criteria()
}

// Mode reads the acquisition mode from the instrument.
func (o *Oscilloscope) Mode() (string, error) {
	resp, err := readParam(o.handler, Mode, 0)
	if err != nil {
		return "", err
	}
	if err := o.mode.SetValue(resp); err != nil {
		return "", err
	}
	return o.mode.Value(), nil
}

// SetMode validates the acquisition mode and writes it.
func (o *Oscilloscope) SetMode(mode string) error {
	if err := o.mode.SetValue(mode); err != nil {
		return err
	}
	return writeParam(o.handler, Mode, 0, o.mode.Value())
}

// Refresh re-reads every mediated parameter so the containers reflect
// the instrument's current state. Drivers call it after a reset.
func (o *Oscilloscope) Refresh() error {
	for _, ch := range o.channels {
		reads := []func() (string, error){
			ch.State, ch.Visible, ch.Unit, ch.Atten,
			ch.Scale, ch.Bandwidth, ch.Coupling,
		}
		for _, read := range reads {
			if _, err := read(); err != nil {
				return err
			}
		}
		if _, err := ch.Offset(); err != nil {
			return err
		}
	}
	if o.timebase != nil {
		if _, err := o.timebase.Scale(); err != nil {
			return err
		}
		if _, err := o.timebase.Delay(); err != nil {
			return err
		}
	}
	if o.trigger != nil {
		reads := []func() (string, error){
			o.trigger.Mode, o.trigger.Source, o.trigger.Type,
			o.trigger.Polarity, o.trigger.Coupling, o.trigger.NoiseReject,
		}
		for _, read := range reads {
			if _, err := read(); err != nil {
				return err
			}
		}
		if _, err := o.trigger.Level(); err != nil {
			return err
		}
	}
	return nil
}
