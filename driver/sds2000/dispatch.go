package sds2000

import (
	"fmt"
	"strings"

	"github.com/scope-control/scc/scope"
	"github.com/scope-control/scc/setting"
)

// holdoffShapes is the textual enumeration of legal holdoff payloads:
// named modes, an event count range, and a duration range in seconds.
const holdoffShapes = "OFF, LAST_TRIG, ACQ_START, TIME 8E-09..30, EVENTS 1..100000000"

// Dispatch implements scope.Handler by mapping every parameter class
// to its SCPI command.
func (s *SDS2000) Dispatch(req scope.Request) (string, error) {
	switch req.Param {
	case scope.Mode:
		// No SCPI command exists for the acquisition mode.
		if req.Write {
			s.mode = req.Value
			return "", nil
		}
		return s.mode, nil
	case scope.ChanState:
		return s.channelCmd(req, "SWIT")
	case scope.ChanVisible:
		return s.channelCmd(req, "VIS")
	case scope.ChanUnit:
		return s.channelCmd(req, "UNIT")
	case scope.ChanScale:
		return s.channelCmd(req, "SCAL")
	case scope.ChanOffset:
		return s.channelCmd(req, "OFFS")
	case scope.ChanBandwidth:
		return s.channelCmd(req, "BWL")
	case scope.ChanCoupling:
		return s.channelCmd(req, "COUP")
	case scope.ChanAtten:
		// The PROB command takes a "VAL," prefix on writes.
		if req.Write {
			return "", s.write(fmt.Sprintf(":CHAN%d:PROB VAL,%s", req.Channel, req.Value))
		}
		return s.query(fmt.Sprintf(":CHAN%d:PROB?", req.Channel))
	case scope.TimeScale:
		return s.plainCmd(req, ":TIM:SCAL")
	case scope.TimeDelay:
		return s.plainCmd(req, ":TIM:DEL")
	case scope.TrigMode:
		return s.plainCmd(req, ":TRIG:MODE")
	case scope.TrigType:
		return s.plainCmd(req, ":TRIG:TYPE")
	case scope.TrigSource:
		return s.plainCmd(req, ":TRIG:EDGE:SOUR")
	case scope.TrigPolarity:
		return s.plainCmd(req, ":TRIG:EDGE:SLOP")
	case scope.TrigLevel:
		return s.plainCmd(req, ":TRIG:EDGE:LEV")
	case scope.TrigCoupling:
		return s.plainCmd(req, ":TRIG:EDGE:COUP")
	case scope.TrigNoiseReject:
		return s.plainCmd(req, ":TRIG:EDGE:NREJ")
	case scope.TrigHoldoff:
		if req.Write {
			return "", s.writeHoldoff(req.Arg)
		}
		return s.readHoldoff()
	case scope.TrigHoldoffs:
		return holdoffShapes, nil
	default:
		return "", fmt.Errorf("sds2000: %s: %w", req.Param, scope.ErrUnsupportedParam)
	}
}

// channelCmd handles a channel-scoped parameter under :CHAN<n>:<verb>.
func (s *SDS2000) channelCmd(req scope.Request, verb string) (string, error) {
	cmd := fmt.Sprintf(":CHAN%d:%s", req.Channel, verb)
	if req.Write {
		return "", s.write(cmd + " " + req.Value)
	}
	return s.query(cmd + "?")
}

// plainCmd handles a non-channel parameter under a fixed command.
func (s *SDS2000) plainCmd(req scope.Request, cmd string) (string, error) {
	if req.Write {
		return "", s.write(cmd + " " + req.Value)
	}
	return s.query(cmd + "?")
}

// writeHoldoff interprets the verbatim holdoff payload. Strings name
// a holdoff mode, integers select event-count holdoff, floats select
// time holdoff in seconds, and nil turns holdoff off. Event and time
// writes first switch the instrument's holdoff mode when needed.
func (s *SDS2000) writeHoldoff(arg any) error {
	switch v := arg.(type) {
	case nil:
		return s.write(":TRIG:EDGE:HOLD OFF")
	case string:
		mode := strings.ToUpper(v)
		switch mode {
		case "LAST_TRIG", "ACQ_START":
			return s.write(":TRIG:EDGE:HST " + mode)
		case "OFF", "TIME", "EVEN", "EVENTS":
			return s.write(":TRIG:EDGE:HOLD " + mode)
		default:
			return fmt.Errorf("sds2000: holdoff mode %q: %w", v, setting.ErrInvalidValue)
		}
	case int:
		return s.writeHoldoffEvents(v)
	case int64:
		return s.writeHoldoffEvents(int(v))
	case float64:
		return s.writeHoldoffTime(v)
	case float32:
		return s.writeHoldoffTime(float64(v))
	default:
		return fmt.Errorf("sds2000: holdoff payload %T: %w", arg, setting.ErrInvalidValueType)
	}
}

func (s *SDS2000) writeHoldoffEvents(count int) error {
	mode, err := s.query(":TRIG:EDGE:HOLD?")
	if err != nil {
		return err
	}
	if !strings.EqualFold(mode, "EVENts") {
		if err := s.write(":TRIG:EDGE:HOLD EVEN"); err != nil {
			return err
		}
	}
	return s.write(fmt.Sprintf(":TRIG:EDGE:HLDEV %d", count))
}

func (s *SDS2000) writeHoldoffTime(seconds float64) error {
	mode, err := s.query(":TRIG:EDGE:HOLD?")
	if err != nil {
		return err
	}
	if !strings.EqualFold(mode, "TIME") {
		if err := s.write(":TRIG:EDGE:HOLD TIME"); err != nil {
			return err
		}
	}
	return s.write(fmt.Sprintf(":TRIG:EDGE:HLDT %G", seconds))
}

// readHoldoff resolves the active holdoff mode, then reads the event
// count or duration under it. Holdoff off reads as "OFF".
func (s *SDS2000) readHoldoff() (string, error) {
	mode, err := s.query(":TRIG:EDGE:HOLD?")
	if err != nil {
		return "", err
	}
	switch {
	case strings.EqualFold(mode, "EVENts"):
		return s.query(":TRIG:EDGE:HLDEV?")
	case strings.EqualFold(mode, "TIME"):
		return s.query(":TRIG:EDGE:HLDT?")
	default:
		return "OFF", nil
	}
}
