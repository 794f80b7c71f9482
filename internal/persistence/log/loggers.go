// Package log persists the world's tick and audit streams as
// zstd-compressed JSONL files, one file per UTC hour.
package log

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/teken/factorygame/internal/sim/world"
)

const hourLayout = "2006-01-02-15"

// stream appends JSON lines to <worldDir>/<name>/<name>-<hour>.jsonl.zst,
// rotating when the UTC hour changes. Every append flushes the bufio layer,
// so a crash loses at most the encoder's in-flight block.
type stream struct {
	dir  string
	name string

	mu   sync.Mutex
	hour string
	file *os.File
	zw   *zstd.Encoder
	buf  *bufio.Writer
}

func openStream(worldDir, name string) *stream {
	return &stream{dir: filepath.Join(worldDir, name), name: name}
}

func (s *stream) append(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	hour := time.Now().UTC().Format(hourLayout)
	if hour != s.hour {
		if err := s.rotate(hour); err != nil {
			return err
		}
	}

	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	if _, err := s.buf.Write(b); err != nil {
		return err
	}
	return s.buf.Flush()
}

func (s *stream) rotate(hour string) error {
	if err := s.closeCurrent(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(s.dir, fmt.Sprintf("%s-%s.jsonl.zst", s.name, hour))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return err
	}
	s.file = f
	s.zw = zw
	s.buf = bufio.NewWriterSize(zw, 128*1024)
	s.hour = hour
	return nil
}

func (s *stream) closeCurrent() error {
	if s.buf != nil {
		_ = s.buf.Flush()
	}
	var err error
	if s.zw != nil {
		err = s.zw.Close()
	}
	if s.file != nil {
		_ = s.file.Close()
	}
	s.file, s.zw, s.buf = nil, nil, nil
	return err
}

func (s *stream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeCurrent()
}

// TickLogger records one entry per simulation tick: joins, leaves, the
// recorded intents, and the state digest.
type TickLogger struct{ s *stream }

func NewTickLogger(worldDir string) *TickLogger {
	return &TickLogger{s: openStream(worldDir, "ticks")}
}

func (l *TickLogger) WriteTick(v world.TickLogEntry) error { return l.s.append(v) }
func (l *TickLogger) Close() error                         { return l.s.Close() }

// AuditLogger records the trail of accepted and rejected mutations.
type AuditLogger struct{ s *stream }

func NewAuditLogger(worldDir string) *AuditLogger {
	return &AuditLogger{s: openStream(worldDir, "audit")}
}

func (l *AuditLogger) WriteAudit(v world.AuditEntry) error { return l.s.append(v) }
func (l *AuditLogger) Close() error                        { return l.s.Close() }
