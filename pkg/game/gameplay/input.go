package gameplay

import (
	"strconv"
	"strings"

	"github.com/leonelquinteros/gotext"

	"wumpus/pkg/game/entities"
	"wumpus/pkg/game/renderer"
)

// commands maps the player's one letter answers to actions
var commands = map[string]entities.Action{
	"m": entities.ActionMove,
	"s": entities.ActionShoot,
	"i": entities.ActionInspect,
}

// ShowRoomDescription tells the player where they are, what they sense and where
// they can go.
func (s *Session) ShowRoomDescription() error {
	room := s.Game.Player.Room()

	s.narrator.Rule()
	s.narrator.Say(renderer.FormatString("%s ROOM{%d}.", gotext.Get("YOU_ARE_IN_ROOM"), room.ID()))

	if err := s.Game.Player.ExploreRoom(); err != nil {
		return err
	}

	exits := make([]string, 0, 3)
	for _, id := range room.Exits() {
		exits = append(exits, strconv.Itoa(id))
	}
	s.narrator.Say(renderer.FormatString("%s %s", gotext.Get("EXITS_GO_TO"), strings.Join(exits, ", ")))
	s.narrator.Say(renderer.FormatString("%s %d", gotext.Get("ARROWS_LEFT"), s.Game.Arrows))
	return nil
}

// AskPlayerToAct asks for an action and a destination and carries it out.
// Invalid answers are reported and the turn ends without anything happening.
func (s *Session) AskPlayerToAct() error {
	s.narrator.Rule()
	answer, err := s.narrator.Ask(gotext.Get("ASK_ACTION"))
	if err != nil {
		return err
	}

	action, ok := commands[strings.ToLower(answer)]
	if !ok {
		s.narrator.Say(renderer.ColorDenied.Sprint(gotext.Get("INVALID_ACTION")))
		return nil
	}

	answer, err = s.narrator.Ask(gotext.Get("ASK_WHERE"))
	if err != nil {
		return err
	}

	room := s.Game.Player.Room()
	dest, err := strconv.Atoi(answer)
	if err != nil {
		s.narrator.Say(renderer.ColorDenied.Sprint(gotext.Get("NO_PATH")))
		return nil
	}
	target, ok := room.Neighbor(dest)
	if !ok {
		s.narrator.Say(renderer.ColorDenied.Sprint(gotext.Get("NO_PATH")))
		return nil
	}

	s.log.Debugw("player acts", "action", action, "from", room.ID(), "to", dest)
	if err := s.Game.Player.Act(action, target); err != nil {
		return err
	}
	s.Game.AdvanceTurn()
	return nil
}
