package world

import (
	"testing"
)

func testInventory(t *testing.T) *Inventory {
	t.Helper()
	cats := loadTestCatalogs(t)
	return NewInventory(&cats.StackCaps)
}

func TestInventoryPush_FillsThenChunks(t *testing.T) {
	inv := testInventory(t)
	iron := mustKind(t, "IRON_SOLID")

	inv.Push(ItemStack{Kind: iron, Quantity: 60})
	inv.Push(ItemStack{Kind: iron, Quantity: 10})

	stacks := inv.Stacks()
	if len(stacks) != 2 {
		t.Fatalf("stacks = %d, want 2", len(stacks))
	}
	if stacks[0].Quantity != 64 {
		t.Fatalf("first stack topped up to %d, want 64 (cap)", stacks[0].Quantity)
	}
	if stacks[1].Quantity != 6 {
		t.Fatalf("remainder stack = %d, want 6", stacks[1].Quantity)
	}
	if inv.Total(iron) != 70 {
		t.Fatalf("total = %d, want 70 (push conserves quantity)", inv.Total(iron))
	}
}

func TestInventoryPush_CapPerKind(t *testing.T) {
	inv := testInventory(t)
	gold := mustKind(t, "GOLD_SOLID") // capped at 32 in configs/stack_caps.json

	inv.Push(ItemStack{Kind: gold, Quantity: 100})

	for i, st := range inv.Stacks() {
		if st.Quantity > 32 {
			t.Fatalf("stack %d = %d, exceeds cap 32", i, st.Quantity)
		}
	}
	if got := inv.Len(); got != 4 {
		t.Fatalf("len = %d, want 4 (3 full + remainder)", got)
	}
	if inv.Total(gold) != 100 {
		t.Fatalf("total = %d, want 100", inv.Total(gold))
	}
}

func TestInventoryPush_IgnoresNonPositive(t *testing.T) {
	inv := testInventory(t)
	inv.Push(ItemStack{Kind: mustKind(t, "IRON_SOLID"), Quantity: 0})
	inv.Push(ItemStack{Kind: mustKind(t, "IRON_SOLID"), Quantity: -3})
	if !inv.IsEmpty() {
		t.Fatalf("expected empty inventory")
	}
}

func TestInventoryRemove_UnderDeliversSilently(t *testing.T) {
	inv := testInventory(t)
	iron := mustKind(t, "IRON_SOLID")
	copper := mustKind(t, "COPPER_SOLID")
	inv.Push(ItemStack{Kind: iron, Quantity: 5})
	inv.Push(ItemStack{Kind: copper, Quantity: 8})

	inv.Remove(ItemStack{Kind: iron, Quantity: 20})

	if inv.Total(iron) != 0 {
		t.Fatalf("iron total = %d, want 0 (remove takes what exists)", inv.Total(iron))
	}
	if inv.Total(copper) != 8 {
		t.Fatalf("copper total = %d, want 8 (untouched)", inv.Total(copper))
	}
	// Drained stacks are pruned, not left at zero.
	for _, st := range inv.Stacks() {
		if st.Quantity == 0 {
			t.Fatalf("zero-quantity stack left behind")
		}
	}
}

func TestInventoryTransfer_AllOrNothing(t *testing.T) {
	src := testInventory(t)
	dst := testInventory(t)
	iron := mustKind(t, "IRON_SOLID")
	src.Push(ItemStack{Kind: iron, Quantity: 3})

	if src.Transfer(ItemStack{Kind: iron, Quantity: 5}, dst) {
		t.Fatalf("transfer of 5 from 3 should fail")
	}
	if src.Total(iron) != 3 || dst.Total(iron) != 0 {
		t.Fatalf("failed transfer must not move anything: src=%d dst=%d", src.Total(iron), dst.Total(iron))
	}

	if !src.Transfer(ItemStack{Kind: iron, Quantity: 2}, dst) {
		t.Fatalf("transfer of 2 from 3 should succeed")
	}
	if src.Total(iron) != 1 || dst.Total(iron) != 2 {
		t.Fatalf("after transfer: src=%d dst=%d, want 1 and 2", src.Total(iron), dst.Total(iron))
	}
}

func TestInventoryTransfer_SpansStacks(t *testing.T) {
	src := testInventory(t)
	dst := testInventory(t)
	gold := mustKind(t, "GOLD_SOLID")
	src.Push(ItemStack{Kind: gold, Quantity: 70}) // 32+32+6 after cap split

	if !src.Transfer(ItemStack{Kind: gold, Quantity: 40}, dst) {
		t.Fatalf("transfer should succeed")
	}
	if src.Total(gold) != 30 || dst.Total(gold) != 40 {
		t.Fatalf("after transfer: src=%d dst=%d, want 30 and 40", src.Total(gold), dst.Total(gold))
	}
}

func TestInventoryTransferFirst_MovesWholeStack(t *testing.T) {
	src := testInventory(t)
	dst := testInventory(t)
	iron := mustKind(t, "IRON_SOLID")
	copper := mustKind(t, "COPPER_SOLID")
	src.Push(ItemStack{Kind: iron, Quantity: 4})
	src.Push(ItemStack{Kind: copper, Quantity: 9})

	st, ok := src.TransferFirst(dst)
	if !ok {
		t.Fatalf("expected a stack to move")
	}
	if st.Kind != iron || st.Quantity != 4 {
		t.Fatalf("moved %v x%d, want IRON_SOLID x4", st.Kind, st.Quantity)
	}
	if src.Total(iron) != 0 || dst.Total(iron) != 4 {
		t.Fatalf("first stack should move wholesale")
	}

	empty := testInventory(t)
	if _, ok := empty.TransferFirst(dst); ok {
		t.Fatalf("empty source must not move anything")
	}
}

func TestInventoryPop_LIFO(t *testing.T) {
	inv := testInventory(t)
	iron := mustKind(t, "IRON_SOLID")
	copper := mustKind(t, "COPPER_SOLID")
	inv.Push(ItemStack{Kind: iron, Quantity: 1})
	inv.Push(ItemStack{Kind: copper, Quantity: 2})

	st, ok := inv.Pop()
	if !ok || st.Kind != copper {
		t.Fatalf("pop = %v, want last-pushed COPPER_SOLID", st.Kind)
	}
	st, ok = inv.Pop()
	if !ok || st.Kind != iron {
		t.Fatalf("pop = %v, want IRON_SOLID", st.Kind)
	}
	if _, ok := inv.Pop(); ok {
		t.Fatalf("pop on empty must report false")
	}
}

func TestInventoryPushUnits_AppendsSingles(t *testing.T) {
	inv := testInventory(t)
	iron := mustKind(t, "IRON_SOLID")
	inv.PushUnits(iron, 5)

	if got := inv.Total(iron); got != 5 {
		t.Fatalf("total = %d, want 5", got)
	}
	if got := inv.Len(); got != 5 {
		t.Fatalf("stacks = %d, want 5 quantity-1 stacks", got)
	}
	for _, st := range inv.Stacks() {
		if st.Quantity != 1 {
			t.Fatalf("unit stack has quantity %d", st.Quantity)
		}
	}

	// Units never coalesce into existing stacks, so wholesale first-stack
	// moves carry exactly one item.
	dst := testInventory(t)
	if st, ok := inv.TransferFirst(dst); !ok || st.Quantity != 1 {
		t.Fatalf("first move = %v %v, want a single unit", st, ok)
	}
	if inv.Total(iron) != 4 || dst.Total(iron) != 1 {
		t.Fatalf("after one move have %d/%d, want 4/1", inv.Total(iron), dst.Total(iron))
	}
}
