package world

import (
	"github.com/teken/factorygame/internal/protocol"
)

// maxPushQty bounds a single ITEM_PUSH so one wire frame cannot allocate an
// arbitrary number of stacks.
const maxPushQty = 1024

func (w *World) applyAct(c *clientState, act protocol.ActMsg, nowTick uint64) {
	for _, in := range act.Intents {
		w.applyIntent(c, in, nowTick)
	}
}

func (w *World) applyIntent(c *clientState, in protocol.Intent, nowTick uint64) {
	switch in.Type {
	case protocol.IntentPlace:
		w.intentPlace(c, in, nowTick)
	case protocol.IntentDestroy:
		w.intentDestroy(c, in, nowTick)
	case protocol.IntentSelect:
		w.intentSelect(c, in, nowTick)
	case protocol.IntentDeselectAll:
		w.selected = map[string]struct{}{}
		w.ack(c, in, nowTick, "")
	case protocol.IntentSetReaction:
		w.intentSetReaction(c, in, nowTick)
	case protocol.IntentPushItem:
		w.intentPushItem(c, in, nowTick)
	case protocol.IntentInspect:
		w.intentInspect(c, in, nowTick)
	default:
		w.nack(c, in, nowTick, protocol.ErrBadRequest, "unknown intent type")
	}
}

func (w *World) intentPlace(c *clientState, in protocol.Intent, nowTick uint64) {
	kind, ok := ParseBlockKind(in.BlockKind)
	if !ok {
		w.nack(c, in, nowTick, protocol.ErrBadRequest, "unknown block kind")
		return
	}
	facing := North
	if in.Facing != "" {
		if facing, ok = ParseDirection(in.Facing); !ok {
			w.nack(c, in, nowTick, protocol.ErrBadRequest, "unknown facing")
			return
		}
	}
	pos := V3FromArray(in.BlockPos)
	if _, occupied := w.lattice[pos]; occupied {
		// Occupied cell: the placement is dropped, not an error elsewhere.
		w.auditRejected(nowTick, c.ID, "BLOCK_PLACE", pos, "cell occupied")
		w.nack(c, in, nowTick, protocol.ErrBlocked, "cell occupied")
		return
	}

	b := w.spawnBlock(kind, facing, pos)
	w.audit(nowTick, c.ID, "BLOCK_PLACE", pos, map[string]any{
		"block_id": b.ID,
		"kind":     kind.String(),
		"facing":   facing.String(),
	})
	w.broadcast(protocol.Event{
		"t":        nowTick,
		"type":     "BLOCK_PLACED",
		"block_id": b.ID,
		"kind":     kind.String(),
		"facing":   facing.String(),
		"pos":      pos.ToArray(),
	})
	w.ack(c, in, nowTick, b.ID)
}

// spawnBlock creates the block and the roles its kind carries, and registers
// it in the lattice index.
func (w *World) spawnBlock(kind BlockKind, facing Direction, pos Vec3i) *Block {
	b := &Block{
		ID:     w.newBlockID(),
		Kind:   kind,
		Facing: facing,
		Pos:    pos,
	}
	caps := &w.cats.StackCaps
	switch kind {
	case KindFurnace:
		b.Input = &Input{Inventory: NewInventory(caps)}
		b.Output = &Output{Inventory: NewInventory(caps)}
		b.Process = &Process{}
	case KindConveyor:
		b.Input = &Input{Inventory: NewInventory(caps)}
		b.Output = &Output{Inventory: NewInventory(caps)}
		hop := NewTimer(w.hopPeriod)
		b.Hop = &hop
	case KindSplitter:
		b.Input = &Input{Inventory: NewInventory(caps)}
		b.Output = &Output{Inventory: NewInventory(caps)}
	case KindStorage:
		b.Input = &Input{Inventory: NewInventory(caps)}
		b.Output = &Output{Inventory: NewInventory(caps)}
		if w.storageSeed != nil {
			b.Output.Inventory.PushUnits(w.storageSeed.Kind, w.storageSeed.Quantity)
		}
	}
	w.blocks[b.ID] = b
	w.lattice[pos] = b.ID
	return b
}

func (w *World) intentDestroy(c *clientState, in protocol.Intent, nowTick uint64) {
	b := w.blocks[in.BlockID]
	if b == nil {
		w.nack(c, in, nowTick, protocol.ErrInvalidTarget, "no such block")
		return
	}
	delete(w.blocks, b.ID)
	delete(w.lattice, b.Pos)
	delete(w.selected, b.ID)
	w.audit(nowTick, c.ID, "BLOCK_DESTROY", b.Pos, map[string]any{
		"block_id": b.ID,
		"kind":     b.Kind.String(),
	})
	w.broadcast(protocol.Event{
		"t":        nowTick,
		"type":     "BLOCK_DESTROYED",
		"block_id": b.ID,
		"pos":      b.Pos.ToArray(),
	})
	w.ack(c, in, nowTick, b.ID)
}

func (w *World) intentSelect(c *clientState, in protocol.Intent, nowTick uint64) {
	b := w.blocks[in.BlockID]
	if b == nil {
		w.nack(c, in, nowTick, protocol.ErrInvalidTarget, "no such block")
		return
	}
	w.selected[b.ID] = struct{}{}
	w.ack(c, in, nowTick, b.ID)
}

// intentSetReaction is one of the two legal external mutators beyond normal
// tick behavior (debug/inspector affordance).
func (w *World) intentSetReaction(c *clientState, in protocol.Intent, nowTick uint64) {
	b := w.blocks[in.BlockID]
	if b == nil || b.Process == nil {
		w.nack(c, in, nowTick, protocol.ErrInvalidTarget, "block has no process")
		return
	}
	r, ok := w.reactions[in.ReactionID]
	if !ok {
		w.nack(c, in, nowTick, protocol.ErrBadRequest, "unknown reaction")
		return
	}
	b.Process.SetReaction(r)
	w.audit(nowTick, c.ID, "REACTION_SET", b.Pos, map[string]any{
		"block_id": b.ID,
		"reaction": r.ID,
	})
	w.ack(c, in, nowTick, b.ID)
}

// intentPushItem is the other legal external mutator: push a stack into a
// block's input or output inventory.
func (w *World) intentPushItem(c *clientState, in protocol.Intent, nowTick uint64) {
	b := w.blocks[in.BlockID]
	if b == nil {
		w.nack(c, in, nowTick, protocol.ErrInvalidTarget, "no such block")
		return
	}
	kind, ok := ParseItemKind(in.Item)
	if !ok || in.Qty <= 0 || in.Qty > maxPushQty {
		w.nack(c, in, nowTick, protocol.ErrBadRequest, "bad item stack")
		return
	}
	var inv *Inventory
	switch in.Role {
	case "input":
		if b.Input != nil {
			inv = b.Input.Inventory
		}
	case "output":
		if b.Output != nil {
			inv = b.Output.Inventory
		}
	default:
		w.nack(c, in, nowTick, protocol.ErrBadRequest, "role must be input or output")
		return
	}
	if inv == nil {
		w.nack(c, in, nowTick, protocol.ErrInvalidTarget, "block has no such role")
		return
	}
	// Output stock is held as quantity-1 stacks so downstream pulls relay
	// one item per tick; input stock coalesces under the normal cap rules.
	if in.Role == "output" {
		inv.PushUnits(kind, in.Qty)
	} else {
		inv.Push(ItemStack{Kind: kind, Quantity: in.Qty})
	}
	w.audit(nowTick, c.ID, "ITEM_PUSH", b.Pos, map[string]any{
		"block_id": b.ID,
		"role":     in.Role,
		"item":     kind.String(),
		"qty":      in.Qty,
	})
	w.ack(c, in, nowTick, b.ID)
}

func (w *World) intentInspect(c *clientState, in protocol.Intent, nowTick uint64) {
	b := w.blocks[in.BlockID]
	if b == nil {
		w.nack(c, in, nowTick, protocol.ErrInvalidTarget, "no such block")
		return
	}
	info := w.blockInfo(b)
	c.pending = append(c.pending, protocol.Event{
		"t":     nowTick,
		"type":  "INSPECT",
		"id":    in.ID,
		"block": info,
	})
	w.ack(c, in, nowTick, b.ID)
}

func (w *World) ack(c *clientState, in protocol.Intent, nowTick uint64, blockID string) {
	c.pending = append(c.pending, protocol.Event{
		"t":        nowTick,
		"type":     "ACK",
		"ack_for":  in.ID,
		"accepted": true,
		"block_id": blockID,
	})
}

func (w *World) nack(c *clientState, in protocol.Intent, nowTick uint64, code, msg string) {
	c.pending = append(c.pending, protocol.Event{
		"t":        nowTick,
		"type":     "ACK",
		"ack_for":  in.ID,
		"accepted": false,
		"code":     code,
		"message":  msg,
	})
}
