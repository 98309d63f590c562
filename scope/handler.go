package scope

import "errors"

// ErrUnsupportedParam reports a dispatch call whose parameter class
// the driver does not implement. It is a programming error in the
// driver's parameter table, never a recoverable condition.
var ErrUnsupportedParam = errors.New("UNSUPPORTED_PARAMETER")

// Request describes one mediated read or write of an instrument
// parameter. The payload shape is fixed per parameter class: Channel
// carries the 1-based channel number for channel-scoped parameters
// (0 otherwise), Value carries the canonical validated value rendered
// as text for writes, and Arg carries the verbatim payload for the
// one parameter the containers do not validate (the trigger holdoff,
// whose legal shapes vary by instrument model).
type Request struct {
	Param   Param
	Write   bool
	Channel int
	Value   string
	Arg     any
}

// Handler is the dispatch contract a concrete driver supplies. Every
// container read and write funnels through Dispatch; application code
// never calls it directly.
//
// For reads, Dispatch returns the authoritative current value as
// reported by the instrument protocol, typically a label string and
// sometimes text requiring numeric parsing downstream. For writes it
// performs the protocol action; the returned string is empty or an
// echo. An unrecognized Param must fail with ErrUnsupportedParam.
type Handler interface {
	Dispatch(req Request) (string, error)
}

// readParam issues a read dispatch for p.
func readParam(h Handler, p Param, channel int) (string, error) {
	return h.Dispatch(Request{Param: p, Channel: channel})
}

// writeParam issues a write dispatch carrying the validated value.
func writeParam(h Handler, p Param, channel int, value string) error {
	_, err := h.Dispatch(Request{Param: p, Write: true, Channel: channel, Value: value})
	return err
}
