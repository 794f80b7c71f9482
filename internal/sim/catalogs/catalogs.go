package catalogs

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultStackCap bounds a single stack's quantity when the cap table has no
// entry for its kind.
const DefaultStackCap = 64

type Catalogs struct {
	Reactions ReactionCatalog
	StackCaps StackCaps
}

type ReactionCatalog struct {
	ByID   map[string]ReactionDef
	Digest string
}

// ReactionDef is the on-disk recipe form. Items are wire ids
// (e.g. "IRON_SOLID"); the sim resolves them into kinds at startup.
type ReactionDef struct {
	ReactionID string      `json:"reaction_id"`
	Inputs     []ItemCount `json:"inputs"`
	Outputs    []ItemCount `json:"outputs"`
	DurationMs int         `json:"duration_ms"`
}

type ItemCount struct {
	Item string `json:"item"`
	Qty  int    `json:"qty"`
}

// StackCaps maps wire item ids to per-stack quantity limits.
type StackCaps struct {
	ByItem  map[string]int
	Default int
	Digest  string
}

func (c *StackCaps) For(item string) int {
	if c == nil {
		return DefaultStackCap
	}
	if n, ok := c.ByItem[item]; ok && n > 0 {
		return n
	}
	if c.Default > 0 {
		return c.Default
	}
	return DefaultStackCap
}

type stackCapsFile struct {
	Default int            `json:"default"`
	Caps    map[string]int `json:"caps"`
}

// Load reads reactions.json and stack_caps.json from dir. Catalog contents
// are immutable once the world is constructed (the world may apply a tuning
// override to the stack-cap default first); digests are advertised to
// clients in WELCOME.
func Load(dir string) (*Catalogs, error) {
	cats := &Catalogs{}

	raw, err := os.ReadFile(filepath.Join(dir, "reactions.json"))
	if err != nil {
		return nil, fmt.Errorf("reactions: %w", err)
	}
	var defs []ReactionDef
	if err := json.Unmarshal(raw, &defs); err != nil {
		return nil, fmt.Errorf("reactions: %w", err)
	}
	byID := make(map[string]ReactionDef, len(defs))
	for _, d := range defs {
		if d.ReactionID == "" {
			return nil, fmt.Errorf("reactions: missing reaction_id")
		}
		if _, dup := byID[d.ReactionID]; dup {
			return nil, fmt.Errorf("reactions: duplicate id %s", d.ReactionID)
		}
		if d.DurationMs <= 0 {
			return nil, fmt.Errorf("reactions: %s: duration_ms must be positive", d.ReactionID)
		}
		for _, ic := range append(append([]ItemCount{}, d.Inputs...), d.Outputs...) {
			if ic.Item == "" || ic.Qty <= 0 {
				return nil, fmt.Errorf("reactions: %s: bad item count", d.ReactionID)
			}
		}
		byID[d.ReactionID] = d
	}
	cats.Reactions = ReactionCatalog{ByID: byID, Digest: digest(raw)}

	raw, err = os.ReadFile(filepath.Join(dir, "stack_caps.json"))
	if err != nil {
		return nil, fmt.Errorf("stack_caps: %w", err)
	}
	var caps stackCapsFile
	if err := json.Unmarshal(raw, &caps); err != nil {
		return nil, fmt.Errorf("stack_caps: %w", err)
	}
	for item, n := range caps.Caps {
		if n <= 0 {
			return nil, fmt.Errorf("stack_caps: %s: cap must be positive", item)
		}
	}
	def := caps.Default
	if def <= 0 {
		def = DefaultStackCap
	}
	cats.StackCaps = StackCaps{ByItem: caps.Caps, Default: def, Digest: digest(raw)}

	return cats, nil
}

func digest(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
