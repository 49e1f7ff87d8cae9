package state

import (
	"wumpus/pkg/engine/cave"
	"wumpus/pkg/game/entities"
)

// Game represents the state of one hunt
type Game struct {
	Cave   *cave.Cave
	Player *entities.Player

	Arrows int   // Arrows left in the quiver
	Turns  int   // Completed turns
	Seed   int64 // Seed the cave was scattered with
}

// NewGame creates a new game in the given cave
func NewGame(c *cave.Cave, arrows int, seed int64) *Game {
	return &Game{
		Cave:   c,
		Player: entities.NewPlayer(),
		Arrows: arrows,
		Seed:   seed,
	}
}

// UseArrow takes one arrow from the quiver. It returns false if there was none left.
func (g *Game) UseArrow() bool {
	if g.Arrows <= 0 {
		return false
	}
	g.Arrows--
	return true
}

// OutOfArrows returns true once the quiver is empty
func (g *Game) OutOfArrows() bool {
	return g.Arrows <= 0
}

// AdvanceTurn increments the turn counter
func (g *Game) AdvanceTurn() {
	g.Turns++
}
