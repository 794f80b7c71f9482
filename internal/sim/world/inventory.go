package world

import (
	"github.com/teken/factorygame/internal/sim/catalogs"
)

// Inventory is an ordered list of item stacks owned by exactly one block role.
// Pushing is cap-aware (partially filled stacks of the same kind are topped
// up first, in list order, before new stacks are appended in cap-sized
// chunks); removal walks the list in order and never leaves a zero-quantity
// stack behind.
type Inventory struct {
	stacks []ItemStack
	caps   *catalogs.StackCaps
}

func NewInventory(caps *catalogs.StackCaps) *Inventory {
	return &Inventory{caps: caps}
}

func (inv *Inventory) IsEmpty() bool { return len(inv.stacks) == 0 }

func (inv *Inventory) Len() int { return len(inv.stacks) }

// Stacks returns a copy of the stack list for read models and tests.
func (inv *Inventory) Stacks() []ItemStack {
	out := make([]ItemStack, len(inv.stacks))
	copy(out, inv.stacks)
	return out
}

// Total sums quantities across all stacks of one kind.
func (inv *Inventory) Total(kind ItemKind) int {
	n := 0
	for _, st := range inv.stacks {
		if st.Kind == kind {
			n += st.Quantity
		}
	}
	return n
}

// Contains reports whether the summed quantity of req.Kind is at least
// req.Quantity. Read-only.
func (inv *Inventory) Contains(req ItemStack) bool {
	return inv.Total(req.Kind) >= req.Quantity
}

func (inv *Inventory) capFor(kind ItemKind) int {
	return inv.caps.For(kind.String())
}

// Push distributes the stack across existing same-kind stacks up to the
// kind's cap, then appends cap-sized chunks plus a final partial for any
// remainder. Total quantity is conserved and no stack ends above its cap.
func (inv *Inventory) Push(s ItemStack) {
	if s.Quantity <= 0 {
		return
	}
	limit := inv.capFor(s.Kind)
	rem := s.Quantity
	for i := range inv.stacks {
		if rem == 0 {
			return
		}
		st := &inv.stacks[i]
		if st.Kind != s.Kind || st.Quantity >= limit {
			continue
		}
		n := limit - st.Quantity
		if n > rem {
			n = rem
		}
		st.Quantity += n
		rem -= n
	}
	for rem > 0 {
		n := rem
		if n > limit {
			n = limit
		}
		inv.stacks = append(inv.stacks, ItemStack{Kind: s.Kind, Quantity: n})
		rem -= n
	}
}

// PushUnits appends n quantity-1 stacks of kind. Seed stock is held as
// units so wholesale first-stack moves carry one item at a time.
func (inv *Inventory) PushUnits(kind ItemKind, n int) {
	for i := 0; i < n; i++ {
		inv.stacks = append(inv.stacks, ItemStack{Kind: kind, Quantity: 1})
	}
}

// Remove decrements matching stacks in list order by up to req.Quantity in
// total. If less is available it removes what exists and under-delivers
// silently; callers that need a guarantee check Contains first.
func (inv *Inventory) Remove(req ItemStack) {
	rem := req.Quantity
	for i := range inv.stacks {
		if rem == 0 {
			break
		}
		st := &inv.stacks[i]
		if st.Kind != req.Kind {
			continue
		}
		n := st.Quantity
		if n > rem {
			n = rem
		}
		st.Quantity -= n
		rem -= n
	}
	inv.prune()
}

// Transfer moves exactly req.Quantity of req.Kind into dst, splitting stacks
// as needed. It is all-or-nothing: if Contains rejects the request, neither
// inventory is touched.
func (inv *Inventory) Transfer(req ItemStack, dst *Inventory) bool {
	if req.Quantity <= 0 || !inv.Contains(req) {
		return false
	}
	rem := req.Quantity
	for i := range inv.stacks {
		if rem == 0 {
			break
		}
		st := &inv.stacks[i]
		if st.Kind != req.Kind {
			continue
		}
		n := st.Quantity
		if n > rem {
			n = rem
		}
		st.Quantity -= n
		rem -= n
		dst.Push(ItemStack{Kind: req.Kind, Quantity: n})
	}
	inv.prune()
	return true
}

// TransferFirst moves the first stack wholesale into dst. Used by pulls that
// declare no accepts filter.
func (inv *Inventory) TransferFirst(dst *Inventory) (ItemStack, bool) {
	if len(inv.stacks) == 0 {
		return ItemStack{}, false
	}
	st := inv.stacks[0]
	inv.stacks = inv.stacks[1:]
	dst.Push(st)
	return st, true
}

// Pop removes and returns the last stack. Conveyors hop material LIFO.
func (inv *Inventory) Pop() (ItemStack, bool) {
	if len(inv.stacks) == 0 {
		return ItemStack{}, false
	}
	st := inv.stacks[len(inv.stacks)-1]
	inv.stacks = inv.stacks[:len(inv.stacks)-1]
	return st, true
}

func (inv *Inventory) prune() {
	out := inv.stacks[:0]
	for _, st := range inv.stacks {
		if st.Quantity > 0 {
			out = append(out, st)
		}
	}
	inv.stacks = out
}
