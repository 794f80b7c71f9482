package protocol

// HELLO (client -> server)
type HelloMsg struct {
	Type            string            `json:"type"`
	ProtocolVersion string            `json:"protocol_version"`
	ClientName      string            `json:"client_name"`
	Capabilities    HelloCapabilities `json:"capabilities,omitempty"`
}

type HelloCapabilities struct {
	MaxQueue int `json:"max_queue,omitempty"`
}

// WELCOME (server -> client)
type WelcomeMsg struct {
	Type            string         `json:"type"`
	ProtocolVersion string         `json:"protocol_version"`
	ClientID        string         `json:"client_id"`
	WorldParams     WorldParams    `json:"world_params"`
	Catalogs        CatalogDigests `json:"catalogs"`
}

type WorldParams struct {
	TickRateHz      int `json:"tick_rate_hz"`
	ConveyorHopMs   int `json:"conveyor_hop_ms"`
	DefaultStackCap int `json:"default_stack_cap"`
}

type CatalogDigests struct {
	ReactionsDigest string `json:"reactions_digest"`
	StackCapsDigest string `json:"stack_caps_digest"`
}

// CATALOG (server -> client): one catalog per message.
type CatalogMsg struct {
	Type            string      `json:"type"`
	ProtocolVersion string      `json:"protocol_version"`
	Name            string      `json:"name"`   // "reactions" | "stack_caps"
	Digest          string      `json:"digest"` // sha256 hex
	Data            interface{} `json:"data"`
}

// ACT (client -> server): a batch of intents for the next tick.
type ActMsg struct {
	Type            string    `json:"type"`
	ProtocolVersion string    `json:"protocol_version"`
	Tick            uint64    `json:"tick,omitempty"`
	Intents         []Intent  `json:"intents"`

	// Filled in server-side from the session; never trusted from the wire.
	ClientID string `json:"-"`
}

// Intent types.
const (
	IntentPlace       = "PLACE"
	IntentDestroy     = "DESTROY"
	IntentSelect      = "SELECT"
	IntentDeselectAll = "DESELECT_ALL"
	IntentSetReaction = "SET_REACTION"
	IntentPushItem    = "PUSH_ITEM"
	IntentInspect     = "INSPECT"
)

type Intent struct {
	ID   string `json:"id"`
	Type string `json:"type"`

	BlockKind  string `json:"block_kind,omitempty"` // PLACE
	Facing     string `json:"facing,omitempty"`     // PLACE
	BlockPos   [3]int `json:"block_pos,omitempty"`  // PLACE
	BlockID    string `json:"block_id,omitempty"`   // DESTROY/SELECT/SET_REACTION/PUSH_ITEM/INSPECT
	ReactionID string `json:"reaction_id,omitempty"`
	Role       string `json:"role,omitempty"` // "input" | "output"
	Item       string `json:"item,omitempty"`
	Qty        int    `json:"qty,omitempty"`
}

// ACK (server -> client): per-intent outcome.
type AckMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	AckFor          string `json:"ack_for"`
	Accepted        bool   `json:"accepted"`
	Code            string `json:"code,omitempty"`
	Message         string `json:"message,omitempty"`
	BlockID         string `json:"block_id,omitempty"`
	ServerTick      uint64 `json:"server_tick,omitempty"`
}

// OBS (server -> client): per-tick observation.
type ObsMsg struct {
	Type            string  `json:"type"`
	ProtocolVersion string  `json:"protocol_version"`
	Tick            uint64  `json:"tick"`
	Events          []Event `json:"events,omitempty"`
	Digest          string  `json:"digest"`
}

// ItemStack is the wire form of a stack.
type ItemStack struct {
	Item string `json:"item"`
	Qty  int    `json:"qty"`
}

// BlockInfo is the inspection read model for one block.
type BlockInfo struct {
	BlockID  string      `json:"block_id"`
	Kind     string      `json:"kind"`
	Facing   string      `json:"facing"`
	Pos      [3]int      `json:"pos"`
	Selected bool        `json:"selected"`
	Input    *RoleInfo   `json:"input,omitempty"`
	Output   *RoleInfo   `json:"output,omitempty"`
	Process  *ProcessInfo `json:"process,omitempty"`
}

type RoleInfo struct {
	Accepts *ItemStack  `json:"accepts,omitempty"`
	Stacks  []ItemStack `json:"stacks"`
}

type ProcessInfo struct {
	ReactionID string  `json:"reaction_id,omitempty"`
	Progress   float64 `json:"progress"`
}
