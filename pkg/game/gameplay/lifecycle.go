// Package gameplay wires the cave, the player and the narrator into a game of
// Hunt the Wumpus.
package gameplay

import (
	"fmt"

	"go.uber.org/zap"

	"wumpus/pkg/engine/cave"
	"wumpus/pkg/game/config"
	"wumpus/pkg/game/entities"
	"wumpus/pkg/game/narrator"
	"wumpus/pkg/game/state"
)

// Session is one running game
type Session struct {
	Game     *state.Game
	narrator *narrator.Narrator
	log      *zap.SugaredLogger
}

// BuildGame creates the cave, scatters the wumpus, pits and bats, and puts the player
// in the entrance.
func BuildGame(cfg *config.Config, rng cave.Random, seed int64, n *narrator.Narrator, log *zap.SugaredLogger) (*Session, error) {
	c := cave.New(rng)

	placements := []struct {
		hazard cave.Hazard
		count  int
	}{
		{entities.Wumpus, 1},
		{entities.Pit, cfg.Pits},
		{entities.Bats, cfg.Bats},
	}
	for _, p := range placements {
		if err := c.AddHazard(p.hazard, p.count); err != nil {
			return nil, fmt.Errorf("placing %s: %w", p.hazard, err)
		}
	}

	entrance, ok := c.Entrance()
	if !ok {
		return nil, fmt.Errorf("no safe room to start from with %d pits and %d bats", cfg.Pits, cfg.Bats)
	}

	s := &Session{
		Game:     state.NewGame(c, cfg.Arrows, seed),
		narrator: n,
		log:      log,
	}
	s.registerSenses()
	s.registerEncounters()
	s.registerActions()

	log.Infow("cave ready",
		"seed", seed,
		"entrance", entrance.ID(),
		"wumpus", roomIDs(c, entities.Wumpus),
		"pits", roomIDs(c, entities.Pit),
		"bats", roomIDs(c, entities.Bats))

	if err := s.Game.Player.Enter(entrance); err != nil {
		return nil, err
	}
	return s, nil
}

// Run plays turns until the story has an ending
func (s *Session) Run() error {
	err := s.narrator.TellStory(s.PlayTurn)
	s.log.Infow("game over", "turns", s.Game.Turns, "arrows", s.Game.Arrows, "err", err)
	return err
}

// PlayTurn describes the current room and carries out one player action
func (s *Session) PlayTurn() error {
	if err := s.ShowRoomDescription(); err != nil {
		return err
	}
	return s.AskPlayerToAct()
}

// roomIDs lists the rooms holding hazard
func roomIDs(c *cave.Cave, hazard cave.Hazard) []int {
	var ids []int
	for _, r := range c.Rooms() {
		if r.Has(hazard) {
			ids = append(ids, r.ID())
		}
	}
	return ids
}
