package entities

import (
	"github.com/leonelquinteros/gotext"

	"wumpus/pkg/engine/cave"
)

// Hazards found in the cave
const (
	Wumpus cave.Hazard = "wumpus"
	Pit    cave.Hazard = "pit"
	Bats   cave.Hazard = "bats"
)

// hazardSymbols maps hazards to the single character used in debug dumps
var hazardSymbols = map[cave.Hazard]rune{
	Wumpus: 'W',
	Pit:    'P',
	Bats:   'B',
}

// HazardOrder is the order in which hazards are sensed and encountered.
// The wumpus comes first: being eaten trumps falling.
var HazardOrder = []cave.Hazard{Wumpus, Pit, Bats}

// GetSymbol returns the dump symbol for a hazard, '?' for unknown ones
func GetSymbol(h cave.Hazard) rune {
	symbol, ok := hazardSymbols[h]
	if !ok {
		return '?'
	}
	return symbol
}

// SenseText returns the translated warning given when h is in a neighbouring room.
// Uses gotext.Get with constant keys to satisfy vet.
func SenseText(h cave.Hazard) string {
	switch h {
	case Wumpus:
		return gotext.Get("SENSE_WUMPUS")
	case Pit:
		return gotext.Get("SENSE_PIT")
	case Bats:
		return gotext.Get("SENSE_BATS")
	default:
		return ""
	}
}

// EncounterText returns the translated message for walking into a room holding h
func EncounterText(h cave.Hazard) string {
	switch h {
	case Wumpus:
		return gotext.Get("ENCOUNTER_WUMPUS")
	case Pit:
		return gotext.Get("ENCOUNTER_PIT")
	case Bats:
		return gotext.Get("ENCOUNTER_BATS")
	default:
		return ""
	}
}
