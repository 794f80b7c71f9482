package ws

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/teken/factorygame/internal/protocol"
	"github.com/teken/factorygame/internal/sim/catalogs"
	"github.com/teken/factorygame/internal/sim/world"
)

func findRepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("could not find repo root from %s", dir)
		}
		dir = parent
	}
}

// leaveRecorder collects the leaves the world records at tick boundaries.
type leaveRecorder struct {
	mu   sync.Mutex
	left []string
}

func (r *leaveRecorder) WriteTick(e world.TickLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.left = append(r.left, e.Leaves...)
	return nil
}

func (r *leaveRecorder) sawLeave(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.left {
		if l == id {
			return true
		}
	}
	return false
}

// A client that completes the handshake and then drops its socket must be
// removed from the world's broadcast set.
func TestHandler_LeavesWorldOnDisconnect(t *testing.T) {
	cats, err := catalogs.Load(filepath.Join(findRepoRoot(t), "configs"))
	if err != nil {
		t.Fatalf("load catalogs: %v", err)
	}
	w, err := world.New(world.WorldConfig{ID: "W_test", TickRateHz: 50}, cats)
	if err != nil {
		t.Fatalf("new world: %v", err)
	}
	rec := &leaveRecorder{}
	w.SetTickLogger(rec)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	srv := httptest.NewServer(NewServer(w, log.New(io.Discard, "", 0)).Handler())
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}

	hello, _ := json.Marshal(protocol.HelloMsg{
		Type:            protocol.TypeHello,
		ProtocolVersion: protocol.Version,
		ClientName:      "tester",
	})
	if err := conn.WriteMessage(websocket.TextMessage, hello); err != nil {
		t.Fatalf("write hello: %v", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read welcome: %v", err)
	}
	var welcome protocol.WelcomeMsg
	if err := json.Unmarshal(msg, &welcome); err != nil {
		t.Fatalf("decode welcome: %v", err)
	}
	if welcome.Type != protocol.TypeWelcome || welcome.ClientID == "" {
		t.Fatalf("bad welcome: %+v", welcome)
	}
	for i := 0; i < 2; i++ {
		if _, _, err := conn.ReadMessage(); err != nil {
			t.Fatalf("read catalog %d: %v", i, err)
		}
	}

	conn.Close()

	deadline := time.Now().Add(5 * time.Second)
	for !rec.sawLeave(welcome.ClientID) {
		if time.Now().After(deadline) {
			t.Fatalf("world never recorded the leave for %s", welcome.ClientID)
		}
		time.Sleep(10 * time.Millisecond)
	}
}
