package mockscope

import (
	"bufio"
	"fmt"
	"log"
	"net"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Server is the line-oriented SCPI TCP server wrapping one emulated
// instrument state.
type Server struct {
	cfg      *Config
	state    *State
	logger   *log.Logger
	stopChan chan struct{}

	mu       sync.Mutex
	listener net.Listener
}

// NewServer builds a server around fresh instrument state. When the
// configuration names a log file, server messages rotate through it.
func NewServer(cfg *Config) *Server {
	logger := log.Default()
	if cfg.Log.File != "" {
		logger = log.New(&lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}, "", log.LstdFlags)
	}
	return &Server{
		cfg:      cfg,
		state:    NewState(cfg),
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Listen binds the configured port. Port 0 binds an ephemeral port,
// which Addr reports; tests rely on that.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Listen.Port))
	if err != nil {
		return fmt.Errorf("mockscope: listen on port %d: %w", s.cfg.Listen.Port, err)
	}
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()
	return nil
}

// Addr returns the bound listener address, or "" before Listen.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Serve accepts connections until Close. Each connection executes
// commands line by line against the shared state.
func (s *Server) Serve() error {
	s.mu.Lock()
	ln := s.listener
	s.mu.Unlock()
	if ln == nil {
		return fmt.Errorf("mockscope: Serve before Listen")
	}

	s.logger.Printf("mockscope listening on %s", ln.Addr())

	for {
		select {
		case <-s.stopChan:
			return nil
		default:
			conn, err := ln.Accept()
			if err != nil {
				if strings.Contains(err.Error(), "use of closed network connection") {
					return nil
				}
				s.logger.Printf("accept failed: %v", err)
				continue
			}
			go s.handleConnection(conn)
		}
	}
}

// ListenAndServe binds the configured port and serves until Close.
func (s *Server) ListenAndServe() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()
	s.logger.Printf("connection from %s", conn.RemoteAddr())

	sc := bufio.NewScanner(conn)
	for sc.Scan() {
		resp, reply := s.state.Execute(sc.Text())
		if !reply {
			continue
		}
		if _, err := conn.Write([]byte(resp + "\n")); err != nil {
			s.logger.Printf("write to %s failed: %v", conn.RemoteAddr(), err)
			return
		}
	}
}

// Close stops accepting connections. Closing twice is harmless.
func (s *Server) Close() error {
	select {
	case <-s.stopChan:
		return nil
	default:
		close(s.stopChan)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Close()
	}
	return nil
}
