// Package cave models the rooms of a Hunt the Wumpus cave, the tunnels between them and
// the hazards they hold.
package cave

import (
	"github.com/zyedidia/generic/list"
)

// Hazard is an opaque tag describing something dangerous in a room (a pit, bats, ...)
type Hazard string

// Room is a single cavern. Its id never changes and its neighbours are fixed once the
// owning Cave has been built; only the hazards it holds change during play.
type Room struct {
	id        int
	hazards   *list.List[Hazard]
	neighbors []*Room
}

// NewRoom creates an empty, unconnected room
func NewRoom(id int) *Room {
	return &Room{
		id:      id,
		hazards: list.New[Hazard](),
	}
}

// ID returns the room number
func (r *Room) ID() int {
	return r.id
}

// Add places a hazard in the room. The same hazard may be added more than once.
func (r *Room) Add(hazard Hazard) {
	r.hazards.PushBack(hazard)
}

// Has returns true if at least one instance of hazard is in the room
func (r *Room) Has(hazard Hazard) bool {
	return r.find(hazard) != nil
}

// Count returns how many instances of hazard are in the room
func (r *Room) Count(hazard Hazard) int {
	n := 0
	for node := r.hazards.Front; node != nil; node = node.Next {
		if node.Value == hazard {
			n++
		}
	}
	return n
}

// Remove takes a single instance of hazard out of the room.
// It fails with ErrInvalidOperation if the room does not hold the hazard.
func (r *Room) Remove(hazard Hazard) error {
	node := r.find(hazard)
	if node == nil {
		return hazardError(ErrInvalidOperation, hazard, r.id, "hazard %s is not in room %d", hazard, r.id)
	}
	r.hazards.Remove(node)
	return nil
}

// IsEmpty returns true if the room holds no hazards at all
func (r *Room) IsEmpty() bool {
	return r.hazards.Front == nil
}

// IsSafe returns true if neither the room nor any room next to it holds a hazard.
func (r *Room) IsSafe() bool {
	if !r.IsEmpty() {
		return false
	}
	for _, n := range r.neighbors {
		if !n.IsEmpty() {
			return false
		}
	}
	return true
}

// Hazards returns the hazards in the order they were added
func (r *Room) Hazards() []Hazard {
	var hazards []Hazard
	for node := r.hazards.Front; node != nil; node = node.Next {
		hazards = append(hazards, node.Value)
	}
	return hazards
}

// Connect links the two rooms in both directions.
// Connect is meant for graph construction only: calling it twice for the same pair
// records the tunnel twice.
func (r *Room) Connect(other *Room) {
	r.neighbors = append(r.neighbors, other)
	other.neighbors = append(other.neighbors, r)
}

// Exits returns the ids of the connected rooms in the order they were connected
func (r *Room) Exits() []int {
	exits := make([]int, 0, len(r.neighbors))
	for _, n := range r.neighbors {
		exits = append(exits, n.id)
	}
	return exits
}

// Neighbors returns the connected rooms in the order they were connected
func (r *Room) Neighbors() []*Room {
	neighbors := make([]*Room, len(r.neighbors))
	copy(neighbors, r.neighbors)
	return neighbors
}

// Neighbor returns the connected room with the given id, if there is one
func (r *Room) Neighbor(id int) (*Room, bool) {
	for _, n := range r.neighbors {
		if n.id == id {
			return n, true
		}
	}
	return nil, false
}

// RandomNeighbor picks one of the connected rooms uniformly.
func (r *Room) RandomNeighbor(rng Random) (*Room, error) {
	n, err := Choose(rng, r.neighbors)
	if err != nil {
		return nil, roomError(err, r.id, "room %d has no exits", r.id)
	}
	return n, nil
}

func (r *Room) find(hazard Hazard) *list.Node[Hazard] {
	for node := r.hazards.Front; node != nil; node = node.Next {
		if node.Value == hazard {
			return node
		}
	}
	return nil
}
