package cave

// RoomCount is the number of rooms in every cave
const RoomCount = 20

// edges lists every tunnel of the dodecahedron once.
var edges = [][2]int{
	{1, 2}, {2, 10}, {10, 11}, {11, 8}, {8, 1}, {1, 5}, {2, 3}, {9, 10}, {20, 11}, {7, 8},
	{5, 4}, {4, 3}, {3, 12}, {12, 9}, {9, 19}, {19, 20}, {20, 17}, {17, 7}, {7, 6}, {6, 5},
	{4, 14}, {12, 13}, {18, 19}, {16, 17}, {15, 6}, {14, 13}, {13, 18}, {18, 16}, {16, 15}, {15, 14},
}

// Cave owns all rooms and the tunnels between them. The layout is fixed when the cave
// is created; only hazards move afterwards.
type Cave struct {
	rooms []*Room // index is id-1
	rng   Random
}

// New builds the cave: rooms 1..RoomCount connected by the fixed edge list.
func New(rng Random) *Cave {
	c := &Cave{
		rooms: make([]*Room, RoomCount),
		rng:   rng,
	}
	for i := range c.rooms {
		c.rooms[i] = NewRoom(i + 1)
	}
	for _, e := range edges {
		c.rooms[e[0]-1].Connect(c.rooms[e[1]-1])
	}
	return c
}

// Size returns the number of rooms
func (c *Cave) Size() int {
	return len(c.rooms)
}

// Room returns the room with the given id
func (c *Cave) Room(id int) (*Room, bool) {
	if id < 1 || id > len(c.rooms) {
		return nil, false
	}
	return c.rooms[id-1], true
}

// Rooms returns every room in ascending id order
func (c *Cave) Rooms() []*Room {
	rooms := make([]*Room, len(c.rooms))
	copy(rooms, c.rooms)
	return rooms
}

// AddHazard places n instances of hazard in n distinct random rooms that do not
// already hold it. Rooms are drawn uniformly and redrawn until a free one comes up.
// It fails before placing anything if fewer than n rooms are free of the hazard.
func (c *Cave) AddHazard(hazard Hazard, n int) error {
	if n < 0 {
		return hazardError(ErrInvalidOperation, hazard, 0, "cannot place %d instances of %s", n, hazard)
	}

	free := 0
	for _, r := range c.rooms {
		if !r.Has(hazard) {
			free++
		}
	}
	if n > free {
		return hazardError(ErrNotEnoughRooms, hazard, 0, "cannot place %d instances of %s in %d free rooms", n, hazard, free)
	}

	for placed := 0; placed < n; {
		room := c.RandomRoom()
		if room.Has(hazard) {
			continue
		}
		room.Add(hazard)
		placed++
	}
	return nil
}

// RandomRoom returns a uniformly selected room
func (c *Cave) RandomRoom() *Room {
	return c.rooms[c.rng.IntRange(1, len(c.rooms))-1]
}

// RoomWith returns the lowest numbered room holding hazard
func (c *Cave) RoomWith(hazard Hazard) (*Room, bool) {
	for _, r := range c.rooms {
		if r.Has(hazard) {
			return r, true
		}
	}
	return nil, false
}

// Count returns the number of instances of hazard across the whole cave
func (c *Cave) Count(hazard Hazard) int {
	n := 0
	for _, r := range c.rooms {
		n += r.Count(hazard)
	}
	return n
}

// Entrance returns the lowest numbered safe room, the place a player starts from.
func (c *Cave) Entrance() (*Room, bool) {
	for _, r := range c.rooms {
		if r.IsSafe() {
			return r, true
		}
	}
	return nil, false
}

// Move relocates one instance of hazard between two rooms.
// The source must hold the hazard; otherwise nothing changes and ErrInvalidOperation
// is returned.
func (c *Cave) Move(hazard Hazard, from, to *Room) error {
	if !from.Has(hazard) {
		return hazardError(ErrInvalidOperation, hazard, from.ID(), "cannot move %s: not in room %d", hazard, from.ID())
	}
	if err := from.Remove(hazard); err != nil {
		return err
	}
	to.Add(hazard)
	return nil
}

// Random returns the randomness source the cave was built with
func (c *Cave) Random() Random {
	return c.rng
}
