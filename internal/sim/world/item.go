package world

import "strings"

// Element is an atomic number, Hydrogen = 1. The set is compiled in; new
// elements never appear at runtime.
type Element uint8

const (
	Hydrogen Element = iota + 1
	Helium
	Lithium
	Beryllium
	Boron
	Carbon
	Nitrogen
	Oxygen
	Fluorine
	Neon
	Sodium
	Magnesium
	Aluminium
	Silicon
	Phosphorus
	Sulfur
	Chlorine
	Argon
	Potassium
	Calcium
	Scandium
	Titanium
	Vanadium
	Chromium
	Manganese
	Iron
	Cobalt
	Nickel
	Copper
	Zinc
	Gallium
	Germanium
	Arsenic
	Selenium
	Bromine
	Krypton
	Rubidium
	Strontium
	Yttrium
	Zirconium
	Niobium
	Molybdenum
	Technetium
	Ruthenium
	Rhodium
	Palladium
	Silver
	Cadmium
	Indium
	Tin
	Antimony
	Tellurium
	Iodine
	Xenon
	Cesium
	Barium
	Lanthanum
	Cerium
	Praseodymium
	Neodymium
	Promethium
	Samarium
	Europium
	Gadolinium
	Terbium
	Dysprosium
	Holmium
	Erbium
	Thulium
	Ytterbium
	Lutetium
	Hafnium
	Tantalum
	Tungsten
	Rhenium
	Osmium
	Iridium
	Platinum
	Gold
	Mercury
	Thallium
	Lead
	Bismuth
	Polonium
	Astatine
	Radon
	Francium
	Radium
	Actinium
	Thorium
	Protactinium
	Uranium
	Neptunium
	Plutonium
	Americium
	Curium
	Berkelium
	Californium
	Einsteinium
	Fermium
	Mendelevium
	Nobelium
	Lawrencium
	Rutherfordium
	Dubnium
	Seaborgium
	Bohrium
	Hassium
	Meitnerium
	Darmstadtium
	Roentgenium
	Copernicium
	Nihonium
	Flerovium
	Moscovium
	Livermorium
	Tennessine
	Oganesson
)

var elementNames = [...]string{
	Hydrogen: "HYDROGEN", Helium: "HELIUM", Lithium: "LITHIUM", Beryllium: "BERYLLIUM",
	Boron: "BORON", Carbon: "CARBON", Nitrogen: "NITROGEN", Oxygen: "OXYGEN",
	Fluorine: "FLUORINE", Neon: "NEON", Sodium: "SODIUM", Magnesium: "MAGNESIUM",
	Aluminium: "ALUMINIUM", Silicon: "SILICON", Phosphorus: "PHOSPHORUS", Sulfur: "SULFUR",
	Chlorine: "CHLORINE", Argon: "ARGON", Potassium: "POTASSIUM", Calcium: "CALCIUM",
	Scandium: "SCANDIUM", Titanium: "TITANIUM", Vanadium: "VANADIUM", Chromium: "CHROMIUM",
	Manganese: "MANGANESE", Iron: "IRON", Cobalt: "COBALT", Nickel: "NICKEL",
	Copper: "COPPER", Zinc: "ZINC", Gallium: "GALLIUM", Germanium: "GERMANIUM",
	Arsenic: "ARSENIC", Selenium: "SELENIUM", Bromine: "BROMINE", Krypton: "KRYPTON",
	Rubidium: "RUBIDIUM", Strontium: "STRONTIUM", Yttrium: "YTTRIUM", Zirconium: "ZIRCONIUM",
	Niobium: "NIOBIUM", Molybdenum: "MOLYBDENUM", Technetium: "TECHNETIUM", Ruthenium: "RUTHENIUM",
	Rhodium: "RHODIUM", Palladium: "PALLADIUM", Silver: "SILVER", Cadmium: "CADMIUM",
	Indium: "INDIUM", Tin: "TIN", Antimony: "ANTIMONY", Tellurium: "TELLURIUM",
	Iodine: "IODINE", Xenon: "XENON", Cesium: "CESIUM", Barium: "BARIUM",
	Lanthanum: "LANTHANUM", Cerium: "CERIUM", Praseodymium: "PRASEODYMIUM", Neodymium: "NEODYMIUM",
	Promethium: "PROMETHIUM", Samarium: "SAMARIUM", Europium: "EUROPIUM", Gadolinium: "GADOLINIUM",
	Terbium: "TERBIUM", Dysprosium: "DYSPROSIUM", Holmium: "HOLMIUM", Erbium: "ERBIUM",
	Thulium: "THULIUM", Ytterbium: "YTTERBIUM", Lutetium: "LUTETIUM", Hafnium: "HAFNIUM",
	Tantalum: "TANTALUM", Tungsten: "TUNGSTEN", Rhenium: "RHENIUM", Osmium: "OSMIUM",
	Iridium: "IRIDIUM", Platinum: "PLATINUM", Gold: "GOLD", Mercury: "MERCURY",
	Thallium: "THALLIUM", Lead: "LEAD", Bismuth: "BISMUTH", Polonium: "POLONIUM",
	Astatine: "ASTATINE", Radon: "RADON", Francium: "FRANCIUM", Radium: "RADIUM",
	Actinium: "ACTINIUM", Thorium: "THORIUM", Protactinium: "PROTACTINIUM", Uranium: "URANIUM",
	Neptunium: "NEPTUNIUM", Plutonium: "PLUTONIUM", Americium: "AMERICIUM", Curium: "CURIUM",
	Berkelium: "BERKELIUM", Californium: "CALIFORNIUM", Einsteinium: "EINSTEINIUM", Fermium: "FERMIUM",
	Mendelevium: "MENDELEVIUM", Nobelium: "NOBELIUM", Lawrencium: "LAWRENCIUM", Rutherfordium: "RUTHERFORDIUM",
	Dubnium: "DUBNIUM", Seaborgium: "SEABORGIUM", Bohrium: "BOHRIUM", Hassium: "HASSIUM",
	Meitnerium: "MEITNERIUM", Darmstadtium: "DARMSTADTIUM", Roentgenium: "ROENTGENIUM", Copernicium: "COPERNICIUM",
	Nihonium: "NIHONIUM", Flerovium: "FLEROVIUM", Moscovium: "MOSCOVIUM", Livermorium: "LIVERMORIUM",
	Tennessine: "TENNESSINE", Oganesson: "OGANESSON",
}

func (e Element) String() string {
	if e == 0 || int(e) >= len(elementNames) {
		return "?"
	}
	return elementNames[e]
}

// State is the physical state a material stack is in.
type State uint8

const (
	Solid State = iota
	Liquid
	Gas
	Plasma
)

var stateNames = [...]string{
	Solid:  "SOLID",
	Liquid: "LIQUID",
	Gas:    "GAS",
	Plasma: "PLASMA",
}

func (s State) String() string {
	if int(s) >= len(stateNames) {
		return "?"
	}
	return stateNames[s]
}

// Energy is a non-material item kind.
type Energy uint8

const (
	Mechanical Energy = iota + 1
	Electric
	Magnetic
	Gravitational
	Chemical
	Ionization
	Nuclear
	Chromodynamic
	MechanicalWave
	SoundWave
	Radiant
	Rest
	Thermal
)

var energyNames = [...]string{
	Mechanical:     "MECHANICAL",
	Electric:       "ELECTRIC",
	Magnetic:       "MAGNETIC",
	Gravitational:  "GRAVITATIONAL",
	Chemical:       "CHEMICAL",
	Ionization:     "IONIZATION",
	Nuclear:        "NUCLEAR",
	Chromodynamic:  "CHROMODYNAMIC",
	MechanicalWave: "MECHANICAL_WAVE",
	SoundWave:      "SOUND_WAVE",
	Radiant:        "RADIANT",
	Rest:           "REST",
	Thermal:        "THERMAL",
}

func (e Energy) String() string {
	if e == 0 || int(e) >= len(energyNames) {
		return "?"
	}
	return energyNames[e]
}

// KindClass discriminates the two arms of the ItemKind union.
type KindClass uint8

const (
	ClassElement KindClass = iota
	ClassEnergy
)

// ItemKind identifies one fungible material: either an element in a physical
// state, or a form of energy. It is comparable and safe as a map key;
// equality is structural.
type ItemKind struct {
	Class   KindClass
	Element Element
	State   State
	Energy  Energy
}

func ElementKind(e Element, s State) ItemKind {
	return ItemKind{Class: ClassElement, Element: e, State: s}
}

func EnergyKind(e Energy) ItemKind {
	return ItemKind{Class: ClassEnergy, Energy: e}
}

// String returns the wire id, e.g. "IRON_SOLID" or "THERMAL_ENERGY".
func (k ItemKind) String() string {
	if k.Class == ClassEnergy {
		return k.Energy.String() + "_ENERGY"
	}
	return k.Element.String() + "_" + k.State.String()
}

// ParseItemKind inverts String. The energy arm is tagged by an "_ENERGY"
// suffix; everything else is ELEMENT_STATE.
func ParseItemKind(id string) (ItemKind, bool) {
	if name, ok := strings.CutSuffix(id, "_ENERGY"); ok {
		for e, n := range energyNames {
			// Index 0 is the unused zero value; its empty name must not
			// match the bare suffix "_ENERGY".
			if n != "" && n == name {
				return EnergyKind(Energy(e)), true
			}
		}
		return ItemKind{}, false
	}
	i := strings.LastIndexByte(id, '_')
	if i <= 0 {
		return ItemKind{}, false
	}
	elemName, stateName := id[:i], id[i+1:]
	var elem Element
	for e, n := range elementNames {
		if n == elemName {
			elem = Element(e)
			break
		}
	}
	if elem == 0 {
		return ItemKind{}, false
	}
	for s, n := range stateNames {
		if n == stateName {
			return ElementKind(elem, State(s)), true
		}
	}
	return ItemKind{}, false
}

// ItemStack is a fungible quantity of one kind. A stack held by an Inventory
// always has Quantity > 0; empty stacks are pruned on mutation.
type ItemStack struct {
	Kind     ItemKind
	Quantity int
}
