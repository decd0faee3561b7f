package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RawSchedule is the schedule document exported by pretalx.
// Only the parts the kiosk reads are modelled.
type RawSchedule struct {
	Schedule *RawScheduleBody `json:"schedule"`
}

// RawScheduleBody wraps the conference object
type RawScheduleBody struct {
	Conference *RawConference `json:"conference"`
}

// RawConference holds the conference days
type RawConference struct {
	Title string   `json:"title"`
	Days  []RawDay `json:"days"`
}

// RawDay holds the rooms of a single day
type RawDay struct {
	Index int      `json:"index"`
	Date  string   `json:"date"`
	Rooms RawRooms `json:"rooms"`
}

// RawRoom is one room and its talks in document order
type RawRoom struct {
	Name  string
	Talks []RawTalk
}

// RawRooms is the rooms object of a day. It keeps the key order of the document.
type RawRooms []RawRoom

// RawTalk is a talk as exported by pretalx
type RawTalk struct {
	Date     string      `json:"date"`
	Duration string      `json:"duration"`
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle"`
	Persons  []RawPerson `json:"persons"`

	// DecodeErr is set when the record could not be decoded into this shape
	DecodeErr error `json:"-"`
}

// RawPerson is a speaker of a talk
type RawPerson struct {
	PublicName string `json:"public_name"`
}

// UnmarshalJSON decodes the rooms object token by token to retain its key order
func (r *RawRooms) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*r = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("rooms: expected object, got %v", tok)
	}

	rooms := RawRooms{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("rooms: unexpected key %v", keyTok)
		}

		var records []json.RawMessage
		if err := dec.Decode(&records); err != nil {
			return fmt.Errorf("rooms: room %q: %w", name, err)
		}

		// A broken record only affects itself
		talks := make([]RawTalk, 0, len(records))
		for _, rec := range records {
			var talk RawTalk
			if err := json.Unmarshal(rec, &talk); err != nil {
				talk = RawTalk{DecodeErr: err}
			}
			talks = append(talks, talk)
		}
		rooms = append(rooms, RawRoom{Name: name, Talks: talks})
	}

	// Consume the closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}

	*r = rooms
	return nil
}
