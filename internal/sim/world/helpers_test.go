package world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/teken/factorygame/internal/protocol"
	"github.com/teken/factorygame/internal/sim/catalogs"
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

func loadTestCatalogs(t *testing.T) *catalogs.Catalogs {
	t.Helper()
	cats, err := catalogs.Load(filepath.Join(findRepoRoot(t), "configs"))
	if err != nil {
		t.Fatalf("load catalogs: %v", err)
	}
	return cats
}

func newTestWorld(t *testing.T, cfg WorldConfig) *World {
	t.Helper()
	if cfg.ID == "" {
		cfg.ID = "W_test"
	}
	if cfg.TickRateHz == 0 {
		cfg.TickRateHz = 20
	}
	w, err := New(cfg, loadTestCatalogs(t))
	if err != nil {
		t.Fatalf("new world: %v", err)
	}
	return w
}

// joinTestClient runs one tick containing only the join and returns the
// assigned client id plus the OBS channel.
func joinTestClient(t *testing.T, w *World) (string, chan []byte) {
	t.Helper()
	out := make(chan []byte, 64)
	resp := make(chan JoinResponse, 1)
	w.StepOnce([]JoinRequest{{Name: "tester", Out: out, Resp: resp}}, nil, nil)
	r := <-resp
	if r.Welcome.ClientID == "" {
		t.Fatalf("join: empty client id")
	}
	return r.Welcome.ClientID, out
}

// stepAct runs one tick applying the given intents for clientID.
func stepAct(t *testing.T, w *World, clientID string, intents ...protocol.Intent) (uint64, string) {
	t.Helper()
	act := protocol.ActMsg{
		Type:            protocol.TypeAct,
		ProtocolVersion: protocol.Version,
		Intents:         intents,
	}
	return w.StepOnce(nil, nil, []ActionEnvelope{{ClientID: clientID, Act: act}})
}

// placeBlock places one block and returns it.
func placeBlock(t *testing.T, w *World, clientID, kind, facing string, pos [3]int) *Block {
	t.Helper()
	stepAct(t, w, clientID, protocol.Intent{
		ID:        "place_" + kind,
		Type:      protocol.IntentPlace,
		BlockKind: kind,
		Facing:    facing,
		BlockPos:  pos,
	})
	b := w.blockAt(V3FromArray(pos))
	if b == nil {
		t.Fatalf("place %s at %v: no block in lattice", kind, pos)
	}
	return b
}

func mustKind(t *testing.T, id string) ItemKind {
	t.Helper()
	k, ok := ParseItemKind(id)
	if !ok {
		t.Fatalf("parse item kind %q", id)
	}
	return k
}
