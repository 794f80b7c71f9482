package world

// systemGrabbers relays material between the two blocks flanking each
// grabber: from the Output of the block behind it into the Input of the
// block it faces. The grabber itself holds no inventory.
func (w *World) systemGrabbers(nowTick uint64) {
	for _, g := range w.sortedBlocks() {
		if g.Kind != KindGrabber {
			continue
		}
		dst := w.neighborIn(g, g.Facing)
		if dst == nil || dst.Input == nil {
			continue
		}
		src := w.neighborIn(g, g.Facing.Reverse())
		if src == nil || src.Output == nil {
			continue
		}
		w.pull(nowTick, g.ID, src, dst)
	}
}
