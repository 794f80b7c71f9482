package world

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/teken/factorygame/internal/protocol"
	"github.com/teken/factorygame/internal/sim/catalogs"
)

type WorldConfig struct {
	ID            string
	TickRateHz    int
	ConveyorHopMs int
	// DefaultStackCap, when positive, overrides the stack-caps catalog's
	// default for items without a per-kind entry. Comes from tuning.yaml.
	DefaultStackCap int
	StorageSeedItem string
	StorageSeedQty  int
}

type JoinRequest struct {
	Name string
	Out  chan []byte
	Resp chan JoinResponse
}

type JoinResponse struct {
	Welcome  protocol.WelcomeMsg
	Catalogs []protocol.CatalogMsg
}

type ActionEnvelope struct {
	ClientID string
	Act      protocol.ActMsg
}

// World is a single-threaded authoritative simulation. All state must be
// accessed only from the world loop goroutine; tests drive it through step.
type World struct {
	cfg  WorldConfig
	cats *catalogs.Catalogs

	tick atomic.Uint64

	// reactions is immutable after New.
	reactions map[string]*Reaction

	blocks   map[string]*Block
	lattice  map[Vec3i]string
	selected map[string]struct{}

	clients map[string]*clientState

	inbox chan ActionEnvelope
	join  chan JoinRequest
	leave chan string
	stop  chan struct{}

	nextClientNum atomic.Uint64
	nextBlockNum  atomic.Uint64

	// Optional loggers (may be nil). Implemented in internal/persistence/*.
	tickLogger  TickLogger
	auditLogger AuditLogger

	// Broadcast observations accumulated during the current tick.
	eventsThisTick []protocol.Event

	storageSeed  *ItemStack
	tickInterval time.Duration
	hopPeriod    time.Duration
}

type TickLogger interface {
	WriteTick(entry TickLogEntry) error
}

type AuditLogger interface {
	WriteAudit(entry AuditEntry) error
}

type TickLogEntry struct {
	Tick    uint64           `json:"tick"`
	Joins   []string         `json:"joins,omitempty"`
	Leaves  []string         `json:"leaves,omitempty"`
	Intents []RecordedIntent `json:"intents,omitempty"`
	Digest  string           `json:"digest"`
}

type RecordedIntent struct {
	ClientID string          `json:"client_id"`
	Act      protocol.ActMsg `json:"act"`
}

type AuditEntry struct {
	Tick    uint64         `json:"tick"`
	Actor   string         `json:"actor"`
	Action  string         `json:"action"` // e.g. "BLOCK_PLACE"
	Pos     [3]int         `json:"pos"`
	Reason  string         `json:"reason,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

type clientState struct {
	ID      string
	Out     chan []byte
	pending []protocol.Event
}

func New(cfg WorldConfig, cats *catalogs.Catalogs) (*World, error) {
	if cfg.TickRateHz <= 0 {
		return nil, fmt.Errorf("tick_rate_hz must be positive")
	}
	if cfg.ConveyorHopMs <= 0 {
		cfg.ConveyorHopMs = 1000
	}

	reactions, err := buildReactions(cats.Reactions)
	if err != nil {
		return nil, err
	}

	// Tuning wins over the catalog's own default. Applied before any
	// inventory exists, so every cap lookup sees the override.
	if cfg.DefaultStackCap > 0 {
		cats.StackCaps.Default = cfg.DefaultStackCap
	}

	w := &World{
		cfg:          cfg,
		cats:         cats,
		reactions:    reactions,
		blocks:       map[string]*Block{},
		lattice:      map[Vec3i]string{},
		selected:     map[string]struct{}{},
		clients:      map[string]*clientState{},
		inbox:        make(chan ActionEnvelope, 1024),
		join:         make(chan JoinRequest, 64),
		leave:        make(chan string, 64),
		stop:         make(chan struct{}),
		tickInterval: time.Second / time.Duration(cfg.TickRateHz),
		hopPeriod:    time.Duration(cfg.ConveyorHopMs) * time.Millisecond,
	}

	if cfg.StorageSeedItem != "" && cfg.StorageSeedQty > 0 {
		kind, ok := ParseItemKind(cfg.StorageSeedItem)
		if !ok {
			return nil, fmt.Errorf("storage seed: unknown item %q", cfg.StorageSeedItem)
		}
		w.storageSeed = &ItemStack{Kind: kind, Quantity: cfg.StorageSeedQty}
	}

	return w, nil
}

func (w *World) SetTickLogger(l TickLogger)   { w.tickLogger = l }
func (w *World) SetAuditLogger(l AuditLogger) { w.auditLogger = l }

func (w *World) Inbox() chan<- ActionEnvelope { return w.inbox }
func (w *World) Join() chan<- JoinRequest     { return w.join }
func (w *World) Leave() chan<- string         { return w.leave }

func (w *World) ID() string          { return w.cfg.ID }
func (w *World) TickRateHz() int     { return w.cfg.TickRateHz }
func (w *World) CurrentTick() uint64 { return w.tick.Load() }

// Reaction looks up a registry reaction by id. The returned value is shared
// and must not be mutated.
func (w *World) Reaction(id string) (*Reaction, bool) {
	r, ok := w.reactions[id]
	return r, ok
}

func (w *World) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	var pendingActions []ActionEnvelope
	var pendingJoins []JoinRequest
	var pendingLeaves []string

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stop:
			return nil
		case req := <-w.join:
			pendingJoins = append(pendingJoins, req)
		case id := <-w.leave:
			pendingLeaves = append(pendingLeaves, id)
		case env := <-w.inbox:
			pendingActions = append(pendingActions, env)
		case <-ticker.C:
			w.step(pendingJoins, pendingLeaves, pendingActions)
			pendingJoins = pendingJoins[:0]
			pendingLeaves = pendingLeaves[:0]
			pendingActions = pendingActions[:0]
		}
	}
}

func (w *World) Stop() { close(w.stop) }

// StepOnce advances the world by a single tick with the same ordering
// semantics as the server loop. Intended for deterministic tests.
func (w *World) StepOnce(joins []JoinRequest, leaves []string, actions []ActionEnvelope) (tick uint64, digest string) {
	tick = w.tick.Load()
	w.step(joins, leaves, actions)
	return tick, w.stateDigest()
}

func (w *World) newBlockID() string {
	n := w.nextBlockNum.Add(1)
	return fmt.Sprintf("B%06d", n)
}

func (w *World) newClientID() string {
	n := w.nextClientNum.Add(1)
	return fmt.Sprintf("C%04d", n)
}

func sendLatest(ch chan []byte, b []byte) {
	select {
	case ch <- b:
		return
	default:
	}
	// Drop one.
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- b:
	default:
	}
}
