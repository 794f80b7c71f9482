package world

import (
	"time"

	"github.com/teken/factorygame/internal/protocol"
)

// systemFurnaces advances every armed process timer and fires reactions on
// the just-finished edge. The timer keeps ticking while inputs are missing;
// validity is only checked at the firing instant, so a starved furnace
// resumes at the next period crossing once fed.
func (w *World) systemFurnaces(nowTick uint64, dt time.Duration) {
	for _, b := range w.sortedBlocks() {
		if b.Kind != KindFurnace || b.Process == nil {
			continue
		}
		p := b.Process
		if p.Reaction == nil {
			continue
		}
		p.Timer.Advance(dt)
		if !p.Timer.JustFinished() {
			continue
		}
		if !p.Reaction.ValidInput(b.Input.Inventory) {
			continue
		}
		p.Reaction.Run(b.Input.Inventory, b.Output.Inventory)
		p.Timer.Reset()
		w.audit(nowTick, b.ID, "REACTION_RUN", b.Pos, map[string]any{
			"reaction": p.Reaction.ID,
		})
		w.broadcast(protocol.Event{
			"t":        nowTick,
			"type":     "REACTION_DONE",
			"block_id": b.ID,
			"reaction": p.Reaction.ID,
		})
	}
}
