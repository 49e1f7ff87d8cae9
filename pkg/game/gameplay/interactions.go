package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"wumpus/pkg/engine/cave"
	"wumpus/pkg/game/entities"
	"wumpus/pkg/game/renderer"
)

func (s *Session) registerSenses() {
	for _, h := range entities.HazardOrder {
		text := entities.SenseText(h)
		s.Game.Player.Sense(h, func() error {
			s.narrator.Say(renderer.ColorWarning.Sprint(text))
			return nil
		})
	}
}

func (s *Session) registerEncounters() {
	p := s.Game.Player

	p.Encounter(entities.Wumpus, func() error {
		s.finish(renderer.ColorDenied.Sprint(entities.EncounterText(entities.Wumpus)), "walked into the wumpus")
		return nil
	})

	p.Encounter(entities.Pit, func() error {
		s.finish(renderer.ColorDenied.Sprint(entities.EncounterText(entities.Pit)), "fell into a pit")
		return nil
	})

	p.Encounter(entities.Bats, s.batsCarryPlayer)
}

func (s *Session) registerActions() {
	p := s.Game.Player
	p.Action(entities.ActionMove, p.Enter)
	p.Action(entities.ActionShoot, s.shoot)
	p.Action(entities.ActionInspect, s.inspect)
}

// batsCarryPlayer drops the player in a random other room; the bats follow them there.
func (s *Session) batsCarryPlayer() error {
	s.narrator.Say(entities.EncounterText(entities.Bats))

	c := s.Game.Cave
	oldRoom := s.Game.Player.Room()
	newRoom := c.RandomRoom()
	for newRoom == oldRoom {
		newRoom = c.RandomRoom()
	}

	if err := s.Game.Player.Enter(newRoom); err != nil {
		return err
	}
	if err := c.Move(entities.Bats, oldRoom, newRoom); err != nil {
		return err
	}
	s.log.Debugw("bats moved", "from", oldRoom.ID(), "to", newRoom.ID())
	return nil
}

func (s *Session) shoot(dest *cave.Room) error {
	if !s.Game.UseArrow() {
		s.finish(renderer.ColorDenied.Sprint(gotext.Get("OUT_OF_ARROWS")), "out of arrows")
		return nil
	}

	if dest.Has(entities.Wumpus) {
		s.finish(renderer.ColorEnding.Sprint(gotext.Get("WUMPUS_KILLED")), "killed the wumpus")
		return nil
	}
	s.narrator.Say(gotext.Get("ARROW_MISSED"))

	c := s.Game.Cave
	wumpusRoom, ok := c.RoomWith(entities.Wumpus)
	if ok {
		newRoom, err := wumpusRoom.RandomNeighbor(c.Random())
		if err != nil {
			return err
		}
		if err := c.Move(entities.Wumpus, wumpusRoom, newRoom); err != nil {
			return err
		}
		s.log.Debugw("wumpus moved", "from", wumpusRoom.ID(), "to", newRoom.ID())

		if s.Game.Player.Room().Has(entities.Wumpus) {
			s.finish(renderer.ColorDenied.Sprint(gotext.Get("WUMPUS_ATE_YOU")), "woke the wumpus")
			return nil
		}
	}

	if s.Game.OutOfArrows() {
		s.finish(renderer.ColorDenied.Sprint(gotext.Get("OUT_OF_ARROWS")), "out of arrows")
	}
	return nil
}

func (s *Session) inspect(dest *cave.Room) error {
	if dest.IsSafe() {
		s.narrator.Say(gotext.Get("INSPECT_SAFE"))
	} else {
		s.narrator.Say(renderer.ColorWarning.Sprint(gotext.Get("INSPECT_DANGER")))
	}
	return nil
}

func (s *Session) finish(msg, reason string) {
	s.log.Infow("story finished", "reason", reason, "room", s.Game.Player.Room().ID(), "turn", s.Game.Turns)
	s.narrator.FinishStory(msg)
}
