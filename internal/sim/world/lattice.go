package world

import "sort"

// The lattice index maps occupied cells to block ids. It is updated on
// placement and destruction only, which keeps every adjacency lookup O(1)
// instead of scanning all blocks.

func (w *World) blockAt(pos Vec3i) *Block {
	id, ok := w.lattice[pos]
	if !ok {
		return nil
	}
	return w.blocks[id]
}

// neighborIn resolves the block occupying the cell one step from b in the
// given direction. Returns nil when the cell is empty; callers treat that as
// "nothing to do".
func (w *World) neighborIn(b *Block, dir Direction) *Block {
	return w.blockAt(b.Pos.Add(dir.Offset()))
}

// sortedBlocks returns all blocks in ascending lattice order. Systems iterate
// it so a tick's effects do not depend on map order.
func (w *World) sortedBlocks() []*Block {
	out := make([]*Block, 0, len(w.blocks))
	for _, b := range w.blocks {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pos.Less(out[j].Pos) })
	return out
}
