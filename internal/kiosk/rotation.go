package kiosk

// Mode is the state of the rotation
type Mode int

const (
	// Idle shows nothing selected
	Idle Mode = iota
	// Rotating cycles through all rooms
	Rotating
	// ShowingRoom pins a single room
	ShowingRoom
)

func (m Mode) String() string {
	switch m {
	case Rotating:
		return "rotating"
	case ShowingRoom:
		return "showing-room"
	default:
		return "idle"
	}
}

// Rotation tracks which room is on screen. It holds no timer; the owner
// starts and stops the rotation ticker on mode changes.
type Rotation struct {
	mode  Mode
	index int
	room  string
}

// Mode returns the current mode
func (r Rotation) Mode() Mode {
	return r.mode
}

// StartOverview begins rotating from the first room
func (r *Rotation) StartOverview() {
	r.mode = Rotating
	r.index = 0
	r.room = ""
}

// ShowRoom pins room and stops rotating
func (r *Rotation) ShowRoom(room string) {
	r.mode = ShowingRoom
	r.index = 0
	r.room = room
}

// Current returns the room to display, or false when there is none
func (r Rotation) Current(rooms []string) (string, bool) {
	switch r.mode {
	case Rotating:
		if len(rooms) == 0 {
			return "", false
		}
		return rooms[r.index%len(rooms)], true
	case ShowingRoom:
		return r.room, true
	default:
		return "", false
	}
}

// Advance moves to the next room, wrapping around, and returns it.
// It does nothing unless rotating.
func (r *Rotation) Advance(rooms []string) (string, bool) {
	if r.mode != Rotating || len(rooms) == 0 {
		return "", false
	}
	r.index = (r.index + 1) % len(rooms)
	return rooms[r.index], true
}

// Fit keeps the rotation index inside a room list of length n
func (r *Rotation) Fit(n int) {
	if n == 0 {
		r.index = 0
		return
	}
	r.index %= n
}
