// Package scpi provides a line-oriented SCPI transport over a raw TCP
// socket, the control channel most bench instruments expose on port
// 5025.
package scpi

import (
	"bufio"
	"errors"
	"fmt"
	"net"
	"regexp"
	"strings"
	"time"
)

// ErrNotAttached reports an operation on a socket that is not
// connected to an instrument.
var ErrNotAttached = errors.New("NOT_ATTACHED")

// DefaultTimeout bounds each send and receive on the wire.
const DefaultTimeout = 5 * time.Second

// Resource strings are host:port, tolerating an optional scheme
// prefix and a trailing slash, ex/ "tcpip://192.168.0.211:5025/".
var resourcePattern = regexp.MustCompile(`^(?:[A-Za-z][A-Za-z0-9+.-]*://)?([^/]+?)/?$`)

// Socket is one SCPI control connection. It is not safe for
// concurrent use; instruments serialize their control channel anyway.
type Socket struct {
	conn    net.Conn
	rd      *bufio.Reader
	timeout time.Duration
	log     *wireLog
}

// Dial connects to the instrument named by resource.
func Dial(resource string) (*Socket, error) {
	return DialTimeout(resource, DefaultTimeout)
}

// DialTimeout connects with an explicit dial and io timeout.
func DialTimeout(resource string, timeout time.Duration) (*Socket, error) {
	addr, err := parseResource(resource)
	if err != nil {
		return nil, err
	}
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, fmt.Errorf("scpi: dial %s: %w", addr, err)
	}
	return &Socket{
		conn:    conn,
		rd:      bufio.NewReader(conn),
		timeout: timeout,
	}, nil
}

// parseResource extracts the host:port address from a resource
// string.
func parseResource(resource string) (string, error) {
	m := resourcePattern.FindStringSubmatch(strings.TrimSpace(resource))
	if m == nil || m[1] == "" {
		return "", fmt.Errorf("scpi: malformed resource %q", resource)
	}
	addr := m[1]
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return "", fmt.Errorf("scpi: malformed resource %q: %w", resource, err)
	}
	return addr, nil
}

// SetTimeout changes the per-operation io timeout.
func (s *Socket) SetTimeout(timeout time.Duration) {
	s.timeout = timeout
}

// Attached reports whether the socket is connected.
func (s *Socket) Attached() bool {
	return s != nil && s.conn != nil
}

// Send writes one command, appending the newline terminator.
func (s *Socket) Send(cmd string) error {
	if !s.Attached() {
		return ErrNotAttached
	}
	if err := s.conn.SetWriteDeadline(time.Now().Add(s.timeout)); err != nil {
		return fmt.Errorf("scpi: %w", err)
	}
	if _, err := s.conn.Write([]byte(cmd + "\n")); err != nil {
		s.log.record("tx", cmd, err)
		return fmt.Errorf("scpi: send %q: %w", cmd, err)
	}
	s.log.record("tx", cmd, nil)
	return nil
}

// Query sends one command and reads one response line, terminator
// stripped.
func (s *Socket) Query(cmd string) (string, error) {
	if err := s.Send(cmd); err != nil {
		return "", err
	}
	if err := s.conn.SetReadDeadline(time.Now().Add(s.timeout)); err != nil {
		return "", fmt.Errorf("scpi: %w", err)
	}
	line, err := s.rd.ReadString('\n')
	if err != nil {
		s.log.record("rx", line, err)
		return "", fmt.Errorf("scpi: query %q: %w", cmd, err)
	}
	resp := strings.TrimRight(line, "\r\n")
	s.log.record("rx", resp, nil)
	return resp, nil
}

// Close silences the wire log and closes the connection. A closed
// socket reports not attached; closing twice is harmless.
func (s *Socket) Close() error {
	s.CloseLog()
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	s.rd = nil
	if err != nil {
		return fmt.Errorf("scpi: close: %w", err)
	}
	return nil
}
