package world

import (
	"encoding/json"

	"github.com/teken/factorygame/internal/protocol"
)

func (w *World) step(joins []JoinRequest, leaves []string, actions []ActionEnvelope) {
	nowTick := w.tick.Load()

	w.eventsThisTick = w.eventsThisTick[:0]

	// Apply leaves and joins deterministically at the tick boundary.
	recordedLeaves := make([]string, 0, len(leaves))
	for _, id := range leaves {
		if _, ok := w.clients[id]; ok {
			delete(w.clients, id)
			recordedLeaves = append(recordedLeaves, id)
		}
	}
	recordedJoins := make([]string, 0, len(joins))
	for _, req := range joins {
		resp := w.joinClient(req)
		if req.Resp != nil {
			req.Resp <- resp
		}
		recordedJoins = append(recordedJoins, resp.Welcome.ClientID)
	}

	// Apply intents in server receive order (the inbox order).
	recorded := make([]RecordedIntent, 0, len(actions))
	for _, env := range actions {
		c := w.clients[env.ClientID]
		if c == nil {
			continue
		}
		env.Act.ClientID = env.ClientID // trust session identity
		recorded = append(recorded, RecordedIntent{ClientID: env.ClientID, Act: env.Act})
		w.applyAct(c, env.Act, nowTick)
	}

	// Systems run in a fixed order each tick: furnace reactions, internal
	// conveyor hops, external conveyor feeds, grabber relays.
	dt := w.tickInterval
	w.systemFurnaces(nowTick, dt)
	w.systemConveyorHops(nowTick, dt)
	w.systemConveyorFeeds(nowTick)
	w.systemGrabbers(nowTick)

	digest := w.stateDigest()

	// Build + send OBS for each client.
	for _, c := range w.clients {
		obs := protocol.ObsMsg{
			Type:            protocol.TypeObs,
			ProtocolVersion: protocol.Version,
			Tick:            nowTick,
			Digest:          digest,
		}
		obs.Events = append(obs.Events, c.pending...)
		obs.Events = append(obs.Events, w.eventsThisTick...)
		c.pending = c.pending[:0]
		b, err := json.Marshal(obs)
		if err != nil {
			continue
		}
		sendLatest(c.Out, b)
	}

	if w.tickLogger != nil {
		_ = w.tickLogger.WriteTick(TickLogEntry{
			Tick:    nowTick,
			Joins:   recordedJoins,
			Leaves:  recordedLeaves,
			Intents: recorded,
			Digest:  digest,
		})
	}

	w.tick.Add(1)
}

func (w *World) joinClient(req JoinRequest) JoinResponse {
	id := w.newClientID()
	w.clients[id] = &clientState{ID: id, Out: req.Out}

	welcome := protocol.WelcomeMsg{
		Type:            protocol.TypeWelcome,
		ProtocolVersion: protocol.Version,
		ClientID:        id,
		WorldParams: protocol.WorldParams{
			TickRateHz:      w.cfg.TickRateHz,
			ConveyorHopMs:   w.cfg.ConveyorHopMs,
			DefaultStackCap: w.cats.StackCaps.Default,
		},
		Catalogs: protocol.CatalogDigests{
			ReactionsDigest: w.cats.Reactions.Digest,
			StackCapsDigest: w.cats.StackCaps.Digest,
		},
	}

	cats := []protocol.CatalogMsg{
		{
			Type:            protocol.TypeCatalog,
			ProtocolVersion: protocol.Version,
			Name:            "reactions",
			Digest:          w.cats.Reactions.Digest,
			Data:            w.cats.Reactions.ByID,
		},
		{
			Type:            protocol.TypeCatalog,
			ProtocolVersion: protocol.Version,
			Name:            "stack_caps",
			Digest:          w.cats.StackCaps.Digest,
			Data:            w.cats.StackCaps.ByItem,
		},
	}

	return JoinResponse{Welcome: welcome, Catalogs: cats}
}

// broadcast queues an event for every connected client at OBS time.
func (w *World) broadcast(ev protocol.Event) {
	if len(w.clients) == 0 {
		return
	}
	w.eventsThisTick = append(w.eventsThisTick, ev)
}
