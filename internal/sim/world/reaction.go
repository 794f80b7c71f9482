package world

import (
	"fmt"
	"time"

	"github.com/teken/factorygame/internal/sim/catalogs"
)

// Reaction is an immutable recipe: consume Input, yield Output, over
// Duration. Instances live in the world's registry and are shared by pointer
// across every Process that runs them.
type Reaction struct {
	ID       string
	Input    []ItemStack
	Output   []ItemStack
	Duration time.Duration
}

// ValidInput reports whether inv can satisfy every required input stack.
// Each demand is checked independently against the whole inventory; two
// demands of the same kind can both pass against quantity that covers only
// one of them. Kept that way on purpose (see DESIGN.md).
func (r *Reaction) ValidInput(inv *Inventory) bool {
	if inv.IsEmpty() {
		return false
	}
	for _, req := range r.Input {
		if !inv.Contains(req) {
			return false
		}
	}
	return true
}

// Run consumes the reaction's inputs from in and pushes its outputs into
// out. No-op unless ValidInput holds; from the caller's view the conversion
// is atomic.
func (r *Reaction) Run(in, out *Inventory) {
	if in.IsEmpty() || !r.ValidInput(in) {
		return
	}
	for _, req := range r.Input {
		in.Remove(req)
	}
	for _, y := range r.Output {
		out.Push(y)
	}
}

// buildReactions resolves catalog defs into runtime reactions once at
// startup. The resulting map is never mutated afterwards.
func buildReactions(cat catalogs.ReactionCatalog) (map[string]*Reaction, error) {
	out := make(map[string]*Reaction, len(cat.ByID))
	for id, def := range cat.ByID {
		r := &Reaction{
			ID:       id,
			Duration: time.Duration(def.DurationMs) * time.Millisecond,
		}
		var err error
		if r.Input, err = resolveItemCounts(def.Inputs); err != nil {
			return nil, fmt.Errorf("reaction %s: %w", id, err)
		}
		if r.Output, err = resolveItemCounts(def.Outputs); err != nil {
			return nil, fmt.Errorf("reaction %s: %w", id, err)
		}
		out[id] = r
	}
	return out, nil
}

func resolveItemCounts(counts []catalogs.ItemCount) ([]ItemStack, error) {
	out := make([]ItemStack, 0, len(counts))
	for _, ic := range counts {
		kind, ok := ParseItemKind(ic.Item)
		if !ok {
			return nil, fmt.Errorf("unknown item %q", ic.Item)
		}
		out = append(out, ItemStack{Kind: kind, Quantity: ic.Qty})
	}
	return out, nil
}
