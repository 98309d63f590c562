package scpi

import (
	"encoding/json"
	"io"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// wireEntry is one logged wire event, JSON lines on disk.
type wireEntry struct {
	Timestamp time.Time `json:"ts"`
	Direction string    `json:"dir"`
	Text      string    `json:"text"`
	Error     string    `json:"error,omitempty"`
}

// wireLog captures the socket traffic. The methods tolerate a nil
// receiver so the socket code never guards the disabled case.
type wireLog struct {
	mu  sync.Mutex
	out io.WriteCloser
}

// StartLog begins logging every send and receive to path as JSON
// lines with size-based rotation. A previous log is closed first.
func (s *Socket) StartLog(path string) {
	s.CloseLog()
	s.log = &wireLog{
		out: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		},
	}
}

// CloseLog stops wire logging.
func (s *Socket) CloseLog() {
	if s.log == nil {
		return
	}
	s.log.close()
	s.log = nil
}

func (l *wireLog) record(dir, text string, err error) {
	if l == nil {
		return
	}
	entry := wireEntry{
		Timestamp: time.Now().UTC(),
		Direction: dir,
		Text:      text,
	}
	if err != nil {
		entry.Error = err.Error()
	}
	data, merr := json.Marshal(entry)
	if merr != nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.out != nil {
		l.out.Write(append(data, '\n'))
	}
}

func (l *wireLog) close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.out != nil {
		l.out.Close()
		l.out = nil
	}
}
