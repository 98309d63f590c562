package mockscope

import (
	"bufio"
	"net"
	"strings"
	"testing"
	"time"
)

// startServer runs a server on an ephemeral port and returns its
// address.
func startServer(t *testing.T) string {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Listen.Port = 0
	srv := NewServer(cfg)
	if err := srv.Listen(); err != nil {
		t.Fatalf("Listen failed: %v", err)
	}
	go srv.Serve()
	t.Cleanup(func() { srv.Close() })
	return srv.Addr()
}

func roundTrip(t *testing.T, conn net.Conn, rd *bufio.Reader, cmd string) string {
	t.Helper()
	if _, err := conn.Write([]byte(cmd + "\n")); err != nil {
		t.Fatalf("write %q: %v", cmd, err)
	}
	line, err := rd.ReadString('\n')
	if err != nil {
		t.Fatalf("read response to %q: %v", cmd, err)
	}
	return strings.TrimRight(line, "\r\n")
}

func TestServerSpeaksScpi(t *testing.T) {
	addr := startServer(t)

	conn, err := net.DialTimeout("tcp", addr, time.Second)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	rd := bufio.NewReader(conn)

	idn := roundTrip(t, conn, rd, "*IDN?")
	if !strings.HasPrefix(idn, "Siglent Technologies,") {
		t.Errorf("*IDN? = %q", idn)
	}

	// Writes are silent; the next query must answer immediately.
	if _, err := conn.Write([]byte(":CHAN1:COUP AC\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := roundTrip(t, conn, rd, ":CHAN1:COUP?"); got != "AC" {
		t.Errorf(":CHAN1:COUP? = %q, want AC", got)
	}
}

func TestServerSharesStateAcrossConnections(t *testing.T) {
	addr := startServer(t)

	first, err := net.DialTimeout("tcp", addr, time.Second)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	firstRd := bufio.NewReader(first)
	if _, err := first.Write([]byte(":TIM:SCAL 5U\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	// An *OPC? round trip confirms the write was processed before the
	// second connection reads.
	if got := roundTrip(t, first, firstRd, "*OPC?"); got != "1" {
		t.Fatalf("*OPC? = %q, want 1", got)
	}
	first.Close()

	second, err := net.DialTimeout("tcp", addr, time.Second)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer second.Close()
	if got := roundTrip(t, second, bufio.NewReader(second), ":TIM:SCAL?"); got != "5U" {
		t.Errorf(":TIM:SCAL? = %q, want 5U", got)
	}
}

func TestServerCloseStopsServing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Listen.Port = 0
	srv := NewServer(cfg)
	if err := srv.Listen(); err != nil {
		t.Fatalf("Listen failed: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- srv.Serve() }()

	if err := srv.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v after Close", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after Close")
	}

	// Closing twice is harmless.
	if err := srv.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}
