package world

import "github.com/teken/factorygame/internal/protocol"

// blockInfo builds the inspection read model for one block: identity, roles
// and (when present) process progress.
func (w *World) blockInfo(b *Block) protocol.BlockInfo {
	_, selected := w.selected[b.ID]
	info := protocol.BlockInfo{
		BlockID:  b.ID,
		Kind:     b.Kind.String(),
		Facing:   b.Facing.String(),
		Pos:      b.Pos.ToArray(),
		Selected: selected,
	}
	if b.Input != nil {
		ri := &protocol.RoleInfo{Stacks: wireStacks(b.Input.Inventory)}
		if b.Input.Accepts != nil {
			ri.Accepts = &protocol.ItemStack{
				Item: b.Input.Accepts.Kind.String(),
				Qty:  b.Input.Accepts.Quantity,
			}
		}
		info.Input = ri
	}
	if b.Output != nil {
		info.Output = &protocol.RoleInfo{Stacks: wireStacks(b.Output.Inventory)}
	}
	if b.Process != nil {
		pi := &protocol.ProcessInfo{Progress: b.Process.Timer.Progress()}
		if b.Process.Reaction != nil {
			pi.ReactionID = b.Process.Reaction.ID
		}
		info.Process = pi
	}
	return info
}

func wireStacks(inv *Inventory) []protocol.ItemStack {
	stacks := inv.Stacks()
	out := make([]protocol.ItemStack, 0, len(stacks))
	for _, st := range stacks {
		out = append(out, protocol.ItemStack{Item: st.Kind.String(), Qty: st.Quantity})
	}
	return out
}
