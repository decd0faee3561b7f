package models

import "encoding/json"

// RoomSchedule is the ordered list of talks held in one room
type RoomSchedule struct {
	Room  string `json:"room"`
	Talks []Talk `json:"talks"`
}

// Schedule is the normalized schedule of the first conference day.
// Rooms keep the order of the source document, talks keep their order within a room.
type Schedule struct {
	Rooms []RoomSchedule
}

// IsEmpty returns true if the schedule has no rooms
func (s Schedule) IsEmpty() bool {
	return len(s.Rooms) == 0
}

// RoomNames returns the room names in schedule order
func (s Schedule) RoomNames() []string {
	names := make([]string, 0, len(s.Rooms))
	for _, r := range s.Rooms {
		names = append(names, r.Room)
	}
	return names
}

// Talks returns the talks for a room and whether the room exists
func (s Schedule) Talks(room string) ([]Talk, bool) {
	for _, r := range s.Rooms {
		if r.Room == room {
			return r.Talks, true
		}
	}
	return nil, false
}

// MarshalJSON stores the schedule as an array so room order survives a round trip
func (s Schedule) MarshalJSON() ([]byte, error) {
	rooms := s.Rooms
	if rooms == nil {
		rooms = []RoomSchedule{}
	}
	return json.Marshal(rooms)
}

// UnmarshalJSON reads the array form written by MarshalJSON
func (s *Schedule) UnmarshalJSON(data []byte) error {
	var rooms []RoomSchedule
	if err := json.Unmarshal(data, &rooms); err != nil {
		return err
	}
	s.Rooms = rooms
	return nil
}
