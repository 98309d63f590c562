// Package sds2000 drives Siglent SDS2000X HD series oscilloscopes
// over their SCPI socket.
package sds2000

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/scope-control/scc/scope"
	"github.com/scope-control/scc/scpi"
)

// ErrNotAttached reports a control operation before a successful
// Attach.
var ErrNotAttached = errors.New("NOT_ATTACHED")

// idnPattern matches the *IDN? response of an SDS2000-series
// instrument: manufacturer, model, serial, firmware.
var idnPattern = regexp.MustCompile(`(?i)^(Siglent[^,]+),(SDS2[^,]+),([^,]+),([^,]+)$`)

// Transport is the control-channel contract the driver speaks SCPI
// over. *scpi.Socket satisfies it.
type Transport interface {
	Send(cmd string) error
	Query(cmd string) (string, error)
	Attached() bool
	Close() error
}

// SDS2000 is the concrete driver. It embeds the oscilloscope
// abstraction and implements the dispatch contract behind it, so
// every container read and write turns into SCPI traffic here.
type SDS2000 struct {
	*scope.Oscilloscope

	tr Transport

	// The instrument has no SCPI command for the acquisition mode;
	// the driver tracks it locally. YT is the only supported mode.
	mode string
}

// New builds a detached SDS2000 driver. Call Attach before any
// parameter access.
func New() *SDS2000 {
	s := &SDS2000{mode: instrumentModes[0]}
	s.Oscilloscope = newOscilloscope(s)
	return s
}

func channelName(n int) string {
	return fmt.Sprintf("CH%d", n)
}

// Attach connects to the instrument named by resource, verifies its
// identity, and records the info fields. A failed identity check
// closes the connection.
func (s *SDS2000) Attach(resource string) error {
	sock, err := scpi.Dial(resource)
	if err != nil {
		return err
	}
	return s.attach(sock)
}

// attach completes attachment over an already-open transport.
func (s *SDS2000) attach(tr Transport) error {
	idn, err := tr.Query("*IDN?")
	if err != nil {
		tr.Close()
		return fmt.Errorf("sds2000: identify: %w", err)
	}
	m := idnPattern.FindStringSubmatch(idn)
	if m == nil {
		tr.Close()
		return fmt.Errorf("sds2000: not an SDS2000 series instrument: %q", idn)
	}
	s.SetInfo(m[1], m[2], m[3], m[4])
	s.tr = tr
	return nil
}

// Detach closes the control connection.
func (s *SDS2000) Detach() error {
	if s.tr == nil {
		return nil
	}
	err := s.tr.Close()
	s.tr = nil
	return err
}

// Attached reports whether the driver holds an open control
// connection.
func (s *SDS2000) Attached() bool {
	return s.tr != nil && s.tr.Attached()
}

// StartLog begins wire logging when the transport is a SCPI socket.
func (s *SDS2000) StartLog(path string) {
	if sock, ok := s.tr.(*scpi.Socket); ok {
		sock.StartLog(path)
	}
}

// CloseLog stops wire logging.
func (s *SDS2000) CloseLog() {
	if sock, ok := s.tr.(*scpi.Socket); ok {
		sock.CloseLog()
	}
}

// Run starts acquisition.
func (s *SDS2000) Run() error {
	return s.write(":TRIG:RUN")
}

// Stop halts acquisition.
func (s *SDS2000) Stop() error {
	return s.write(":TRIG:STOP")
}

// Status reports the acquisition status, ex/ "Run" or "Stop".
func (s *SDS2000) Status() (string, error) {
	return s.query(":TRIG:STAT?")
}

// Reset issues a factory reset and refreshes every container from the
// instrument's post-reset state.
func (s *SDS2000) Reset() error {
	if err := s.write("*RST"); err != nil {
		return err
	}
	return s.Refresh()
}

// OperationComplete blocks until the instrument finishes its pending
// operations.
func (s *SDS2000) OperationComplete() error {
	_, err := s.query("*OPC?")
	return err
}

// write sends one command and waits for the instrument to complete
// it. Commands on this instrument are otherwise asynchronous.
func (s *SDS2000) write(cmd string) error {
	if !s.Attached() {
		return ErrNotAttached
	}
	if err := s.tr.Send(cmd); err != nil {
		return err
	}
	return s.OperationComplete()
}

// query sends one query and returns the response line.
func (s *SDS2000) query(cmd string) (string, error) {
	if !s.Attached() {
		return "", ErrNotAttached
	}
	return s.tr.Query(cmd)
}
