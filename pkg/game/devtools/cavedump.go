// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"wumpus/pkg/engine/cave"
	"wumpus/pkg/game/entities"
)

// RoomDump is the debug view of one room
type RoomDump struct {
	ID      int      `yaml:"id"`
	Map     string   `yaml:"map"` // Symbols of the hazards in the room, "." when empty
	Safe    bool     `yaml:"safe"`
	Exits   []int    `yaml:"exits,flow"`
	Hazards []string `yaml:"hazards,omitempty,flow"`
}

// CaveDump is the debug view of a whole cave
type CaveDump struct {
	Seed   int64          `yaml:"seed"`
	Totals map[string]int `yaml:"totals"`
	Rooms  []RoomDump     `yaml:"rooms"`
}

// Snapshot captures the current layout and hazards of c
func Snapshot(c *cave.Cave, seed int64) CaveDump {
	dump := CaveDump{
		Seed:   seed,
		Totals: make(map[string]int),
	}
	for _, h := range entities.HazardOrder {
		dump.Totals[string(h)] = c.Count(h)
	}

	for _, r := range c.Rooms() {
		rd := RoomDump{
			ID:    r.ID(),
			Safe:  r.IsSafe(),
			Exits: r.Exits(),
		}
		var symbols strings.Builder
		for _, h := range r.Hazards() {
			rd.Hazards = append(rd.Hazards, string(h))
			symbols.WriteRune(entities.GetSymbol(h))
		}
		if symbols.Len() == 0 {
			symbols.WriteRune('.')
		}
		rd.Map = symbols.String()
		dump.Rooms = append(dump.Rooms, rd)
	}
	return dump
}

// DumpCave writes a YAML snapshot of c to w
func DumpCave(w io.Writer, c *cave.Cave, seed int64) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Snapshot(c, seed)); err != nil {
		return fmt.Errorf("encoding cave dump: %w", err)
	}
	return enc.Close()
}

// DumpCaveToFile writes the YAML snapshot to path
func DumpCaveToFile(path string, c *cave.Cave, seed int64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return DumpCave(f, c, seed)
}
