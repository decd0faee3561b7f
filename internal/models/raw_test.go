package models_test

import (
	"encoding/json"
	"testing"

	"github.com/navikt/ztalks/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawRoomsKeepDocumentOrder(t *testing.T) {
	payload := `{
		"schedule": {
			"conference": {
				"title": "LIT 2024",
				"days": [{
					"index": 1,
					"date": "2024-04-20",
					"rooms": {
						"Raum Z": [{"date": "2024-04-20T10:00:00+02:00", "duration": "00:30", "title": "Z1", "persons": []}],
						"Raum A": [
							{"date": "2024-04-20T10:00:00+02:00", "duration": "00:45", "title": "A1", "subtitle": "sub", "persons": [{"public_name": "Ada"}, {"public_name": "Grace"}]},
							{"date": "2024-04-20T11:00:00+02:00", "duration": "01:00", "title": "A2", "persons": []}
						],
						"Raum M": []
					}
				}]
			}
		}
	}`

	var raw models.RawSchedule
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	rooms := raw.Schedule.Conference.Days[0].Rooms
	require.Len(t, rooms, 3)
	assert.Equal(t, "Raum Z", rooms[0].Name)
	assert.Equal(t, "Raum A", rooms[1].Name)
	assert.Equal(t, "Raum M", rooms[2].Name)

	require.Len(t, rooms[1].Talks, 2)
	assert.Equal(t, "A1", rooms[1].Talks[0].Title)
	assert.Equal(t, "00:45", rooms[1].Talks[0].Duration)
	assert.Equal(t, "Grace", rooms[1].Talks[0].Persons[1].PublicName)
	assert.Empty(t, rooms[2].Talks)
}

func TestRawRoomsBrokenRecordIsIsolated(t *testing.T) {
	payload := `{"Raum A": [
		{"date": "2024-04-20T10:00:00+02:00", "duration": "00:30", "title": "ok"},
		{"date": 12, "duration": ["x"], "title": "broken"}
	]}`

	var rooms models.RawRooms
	require.NoError(t, json.Unmarshal([]byte(payload), &rooms))
	require.Len(t, rooms, 1)
	require.Len(t, rooms[0].Talks, 2)

	assert.NoError(t, rooms[0].Talks[0].DecodeErr)
	assert.Error(t, rooms[0].Talks[1].DecodeErr)
}

func TestRawRoomsRejectsNonObject(t *testing.T) {
	var rooms models.RawRooms
	assert.Error(t, json.Unmarshal([]byte(`["Raum A"]`), &rooms))

	require.NoError(t, json.Unmarshal([]byte(`null`), &rooms))
	assert.Nil(t, rooms)
}
