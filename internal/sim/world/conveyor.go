package world

import (
	"time"

	"github.com/teken/factorygame/internal/protocol"
)

// systemConveyorHops moves material already on a belt from its Input to its
// Output end, one stack (LIFO) per hop period.
func (w *World) systemConveyorHops(nowTick uint64, dt time.Duration) {
	for _, b := range w.sortedBlocks() {
		if b.Kind != KindConveyor || b.Hop == nil {
			continue
		}
		b.Hop.Advance(dt)
		if !b.Hop.JustFinished() {
			continue
		}
		if st, ok := b.Input.Inventory.Pop(); ok {
			b.Output.Inventory.Push(st)
			w.broadcast(protocol.Event{
				"t":        nowTick,
				"type":     "CONVEYOR_HOP",
				"block_id": b.ID,
				"item":     st.Kind.String(),
				"qty":      st.Quantity,
			})
		}
		b.Hop.Reset()
	}
}

// systemConveyorFeeds pulls material onto each conveyor from the Output of
// the block directly behind it (the reverse of its facing).
func (w *World) systemConveyorFeeds(nowTick uint64) {
	for _, b := range w.sortedBlocks() {
		if b.Kind != KindConveyor {
			continue
		}
		src := w.neighborIn(b, b.Facing.Reverse())
		if src == nil || src.Output == nil {
			continue
		}
		w.pull(nowTick, b.ID, src, b)
	}
}

// pull applies the shared filtered-or-first transfer rule: when the
// receiving Input declares an accepts filter, exactly that request moves if
// the source can satisfy it; otherwise the source's first stack moves
// wholesale. Insufficient or empty sources are a no-op.
func (w *World) pull(nowTick uint64, actor string, src, dst *Block) {
	out := src.Output.Inventory
	in := dst.Input
	var moved ItemStack
	if in.Accepts != nil {
		accepts := *in.Accepts
		if out.IsEmpty() || !out.Contains(accepts) {
			return
		}
		if !out.Transfer(accepts, in.Inventory) {
			return
		}
		moved = accepts
	} else {
		st, ok := out.TransferFirst(in.Inventory)
		if !ok {
			return
		}
		moved = st
	}
	w.broadcast(protocol.Event{
		"t":    nowTick,
		"type": "TRANSFER",
		"by":   actor,
		"from": src.ID,
		"to":   dst.ID,
		"item": moved.Kind.String(),
		"qty":  moved.Quantity,
	})
}
