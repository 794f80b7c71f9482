package world

// BlockKind is a closed set; systems dispatch on structure (which roles a
// block carries) and only consult the kind for timing behavior.
type BlockKind uint8

const (
	KindDebug BlockKind = iota
	KindFurnace
	KindConveyor
	KindSplitter
	KindStorage
	KindGrabber
)

var blockKindNames = [...]string{
	KindDebug:    "DEBUG",
	KindFurnace:  "FURNACE",
	KindConveyor: "CONVEYOR",
	KindSplitter: "SPLITTER",
	KindStorage:  "STORAGE",
	KindGrabber:  "GRABBER",
}

func (k BlockKind) String() string {
	if int(k) >= len(blockKindNames) {
		return "?"
	}
	return blockKindNames[k]
}

func ParseBlockKind(s string) (BlockKind, bool) {
	for k, name := range blockKindNames {
		if name == s {
			return BlockKind(k), true
		}
	}
	return KindDebug, false
}

// Input wraps the receiving inventory of a block. Accepts, when set, makes
// transfer pulls selective: only that kind, at least that quantity.
type Input struct {
	Accepts   *ItemStack
	Inventory *Inventory
}

// Output wraps the supplying inventory of a block.
type Output struct {
	Inventory *Inventory
}

// Block is a placed entity: identity, facing and lattice cell, plus the
// roles its kind carries. Facing is fixed at placement.
type Block struct {
	ID     string
	Kind   BlockKind
	Facing Direction
	Pos    Vec3i

	Input   *Input
	Output  *Output
	Process *Process

	// Hop rate-limits a conveyor's internal Input -> Output move.
	Hop *Timer
}
