package entities

import (
	"errors"
	"testing"

	"wumpus/pkg/engine/cave"
)

// makeLine returns three rooms connected 1-2-3.
func makeLine() (*cave.Room, *cave.Room, *cave.Room) {
	a, b, c := cave.NewRoom(1), cave.NewRoom(2), cave.NewRoom(3)
	a.Connect(b)
	b.Connect(c)
	return a, b, c
}

func TestPlayer_EnterSetsRoom(t *testing.T) {
	p := NewPlayer()
	if p.Room() != nil {
		t.Fatal("Room() != nil before Enter")
	}
	a, _, _ := makeLine()
	if err := p.Enter(a); err != nil {
		t.Fatalf("Enter: %v", err)
	}
	if p.Room() != a {
		t.Errorf("Room() = %v, want room 1", p.Room())
	}
}

func TestPlayer_EnterRunsFirstMatchingEncounter(t *testing.T) {
	p := NewPlayer()
	var ran []cave.Hazard
	for _, h := range HazardOrder {
		h := h
		p.Encounter(h, func() error {
			ran = append(ran, h)
			return nil
		})
	}

	a, _, _ := makeLine()
	a.Add(Bats)
	a.Add(Wumpus)
	if err := p.Enter(a); err != nil {
		t.Fatalf("Enter: %v", err)
	}
	if len(ran) != 1 || ran[0] != Wumpus {
		t.Errorf("encounters run = %v, want [wumpus]", ran)
	}
}

func TestPlayer_EnterPropagatesError(t *testing.T) {
	p := NewPlayer()
	boom := errors.New("boom")
	p.Encounter(Pit, func() error { return boom })

	a, _, _ := makeLine()
	a.Add(Pit)
	if err := p.Enter(a); !errors.Is(err, boom) {
		t.Errorf("Enter error = %v, want %v", err, boom)
	}
}

func TestPlayer_ExploreRoomSensesNeighboursOnly(t *testing.T) {
	p := NewPlayer()
	sensed := map[cave.Hazard]int{}
	for _, h := range HazardOrder {
		h := h
		p.Sense(h, func() error {
			sensed[h]++
			return nil
		})
	}

	a, b, c := makeLine()
	a.Add(Pit)  // the player's own room is not sensed
	c.Add(Bats) // two tunnels away from a, next to b
	c.Add(Wumpus)

	if err := p.Enter(a); err != nil {
		t.Fatalf("Enter: %v", err)
	}
	if err := p.ExploreRoom(); err != nil {
		t.Fatalf("ExploreRoom: %v", err)
	}
	if len(sensed) != 0 {
		t.Errorf("sensed %v from room 1, want nothing", sensed)
	}

	if err := p.Enter(b); err != nil {
		t.Fatalf("Enter: %v", err)
	}
	if err := p.ExploreRoom(); err != nil {
		t.Fatalf("ExploreRoom: %v", err)
	}
	if sensed[Pit] != 1 || sensed[Bats] != 1 || sensed[Wumpus] != 1 {
		t.Errorf("sensed %v from room 2, want one of each", sensed)
	}
}

func TestPlayer_Act(t *testing.T) {
	p := NewPlayer()
	var got *cave.Room
	p.Action(ActionMove, func(dest *cave.Room) error {
		got = dest
		return nil
	})

	_, b, _ := makeLine()
	if err := p.Act(ActionMove, b); err != nil {
		t.Fatalf("Act(move): %v", err)
	}
	if got != b {
		t.Errorf("move handler got %v, want room 2", got)
	}
	if err := p.Act(ActionShoot, b); err == nil {
		t.Error("Act(shoot) without a handler = nil, want error")
	}
}

func TestGetSymbol(t *testing.T) {
	if got := GetSymbol(Wumpus); got != 'W' {
		t.Errorf("GetSymbol(Wumpus) = %q, want 'W'", got)
	}
	if got := GetSymbol("dragon"); got != '?' {
		t.Errorf("GetSymbol(dragon) = %q, want '?'", got)
	}
}

func TestHazardTexts(t *testing.T) {
	for _, h := range HazardOrder {
		if SenseText(h) == "" {
			t.Errorf("SenseText(%s) is empty", h)
		}
		if EncounterText(h) == "" {
			t.Errorf("EncounterText(%s) is empty", h)
		}
	}
	if got := SenseText("dragon"); got != "" {
		t.Errorf("SenseText(dragon) = %q, want empty", got)
	}
}
