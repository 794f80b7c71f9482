package log

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/teken/factorygame/internal/sim/world"
)

// soleStreamFile returns the single rotated file a fresh logger produced and
// checks it follows the <name>-<hour>.jsonl.zst naming.
func soleStreamFile(t *testing.T, dir, name string) string {
	t.Helper()
	ents, err := os.ReadDir(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(ents) != 1 {
		t.Fatalf("got %d files, want 1", len(ents))
	}
	fn := ents[0].Name()
	if !strings.HasPrefix(fn, name+"-") || !strings.HasSuffix(fn, ".jsonl.zst") {
		t.Fatalf("unexpected stream file name %q", fn)
	}
	return filepath.Join(dir, name, fn)
}

func readStreamLines(t *testing.T, path string) [][]byte {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	zr, err := zstd.NewReader(f)
	if err != nil {
		t.Fatalf("zstd reader: %v", err)
	}
	defer zr.Close()

	var lines [][]byte
	sc := bufio.NewScanner(zr)
	for sc.Scan() {
		b := make([]byte, len(sc.Bytes()))
		copy(b, sc.Bytes())
		lines = append(lines, b)
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("scan: %v", err)
	}
	return lines
}

func TestTickLogger_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	l := NewTickLogger(dir)

	in := []world.TickLogEntry{
		{Tick: 0, Joins: []string{"C0001"}, Digest: "aa"},
		{Tick: 1, Leaves: []string{"C0001"}, Digest: "bb"},
	}
	for _, e := range in {
		if err := l.WriteTick(e); err != nil {
			t.Fatalf("write tick: %v", err)
		}
	}
	if err := l.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	lines := readStreamLines(t, soleStreamFile(t, dir, "ticks"))
	if len(lines) != len(in) {
		t.Fatalf("got %d lines, want %d", len(lines), len(in))
	}
	for i, b := range lines {
		var got world.TickLogEntry
		if err := json.Unmarshal(b, &got); err != nil {
			t.Fatalf("line %d: %v", i, err)
		}
		if got.Tick != in[i].Tick || got.Digest != in[i].Digest {
			t.Fatalf("line %d = %+v, want %+v", i, got, in[i])
		}
	}
}

func TestAuditLogger_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	l := NewAuditLogger(dir)

	if err := l.WriteAudit(world.AuditEntry{
		Tick: 3, Actor: "C0001", Action: "PLACE_REJECTED",
		Pos: [3]int{1, 0, 2}, Reason: "cell occupied",
	}); err != nil {
		t.Fatalf("write audit: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	lines := readStreamLines(t, soleStreamFile(t, dir, "audit"))
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	var got world.AuditEntry
	if err := json.Unmarshal(lines[0], &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Tick != 3 || got.Actor != "C0001" || got.Reason != "cell occupied" {
		t.Fatalf("entry = %+v", got)
	}
}
