package world

// Direction is one of the six axis-aligned facings a block can have.
// North/South run along X, East/West along Z, Up/Down along Y.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
	Up
	Down
)

var directionNames = [...]string{
	North: "NORTH",
	East:  "EAST",
	South: "SOUTH",
	West:  "WEST",
	Up:    "UP",
	Down:  "DOWN",
}

var directionOffsets = [...]Vec3i{
	North: {X: 1},
	East:  {Z: 1},
	South: {X: -1},
	West:  {Z: -1},
	Up:    {Y: 1},
	Down:  {Y: -1},
}

func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return "?"
	}
	return directionNames[d]
}

// Offset returns the unit lattice step toward the cell the direction points at.
func (d Direction) Offset() Vec3i {
	if int(d) >= len(directionOffsets) {
		return Vec3i{}
	}
	return directionOffsets[d]
}

func (d Direction) Reverse() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case Up:
		return Down
	default:
		return Up
	}
}

func ParseDirection(s string) (Direction, bool) {
	for d, name := range directionNames {
		if name == s {
			return Direction(d), true
		}
	}
	return North, false
}
