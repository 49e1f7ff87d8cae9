package entities

import (
	"fmt"

	"wumpus/pkg/engine/cave"
)

// Action is something the player can do towards a neighbouring room
type Action string

// Player actions
const (
	ActionMove    Action = "move"
	ActionShoot   Action = "shoot"
	ActionInspect Action = "inspect"
)

type hazardHandler struct {
	hazard cave.Hazard
	fn     func() error
}

// Player tracks where the player is and how the game reacts to what they find.
// Reactions are registered by the game script with Sense, Encounter and Action.
type Player struct {
	room       *cave.Room
	senses     []hazardHandler
	encounters []hazardHandler
	actions    map[Action]func(dest *cave.Room) error
}

// NewPlayer creates a player that is not yet in any room
func NewPlayer() *Player {
	return &Player{
		actions: make(map[Action]func(dest *cave.Room) error),
	}
}

// Room returns the room the player is in, nil before the first Enter
func (p *Player) Room() *cave.Room {
	return p.room
}

// Sense registers fn to run when hazard is in a room next to the player
func (p *Player) Sense(hazard cave.Hazard, fn func() error) {
	p.senses = append(p.senses, hazardHandler{hazard: hazard, fn: fn})
}

// Encounter registers fn to run when the player enters a room holding hazard.
// Encounters are tried in registration order and only the first match runs.
func (p *Player) Encounter(hazard cave.Hazard, fn func() error) {
	p.encounters = append(p.encounters, hazardHandler{hazard: hazard, fn: fn})
}

// Action registers the handler for an action
func (p *Player) Action(action Action, fn func(dest *cave.Room) error) {
	p.actions[action] = fn
}

// Enter moves the player into room and triggers the first matching encounter
func (p *Player) Enter(room *cave.Room) error {
	p.room = room
	for _, e := range p.encounters {
		if room.Has(e.hazard) {
			return e.fn()
		}
	}
	return nil
}

// ExploreRoom fires every sense whose hazard is in a neighbouring room
func (p *Player) ExploreRoom() error {
	if p.room == nil {
		return nil
	}
	neighbors := p.room.Neighbors()
	for _, s := range p.senses {
		for _, n := range neighbors {
			if n.Has(s.hazard) {
				if err := s.fn(); err != nil {
					return err
				}
				break
			}
		}
	}
	return nil
}

// Act performs action towards dest
func (p *Player) Act(action Action, dest *cave.Room) error {
	fn, ok := p.actions[action]
	if !ok {
		return fmt.Errorf("unknown action %q", action)
	}
	return fn(dest)
}
