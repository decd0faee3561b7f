package models

// Overview is the selected-room value that makes the display cycle through all rooms
const Overview = "overview"

// DisplayState records which room or mode the kiosk is showing.
// An empty SelectedRoom means nothing has been selected yet.
type DisplayState struct {
	SelectedRoom string `json:"selectedRoom"`
}

// IsOverview returns true if the display is in overview mode
func (d DisplayState) IsOverview() bool {
	return d.SelectedRoom == Overview
}
