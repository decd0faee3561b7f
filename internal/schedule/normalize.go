package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/navikt/ztalks/internal/models"
)

// ErrNoSchedule is returned when a payload does not carry a usable first day
var ErrNoSchedule = errors.New("no schedule available")

// SkippedTalk is a raw talk that could not be normalized
type SkippedTalk struct {
	Room  string
	Index int
	Title string
	Err   error
}

// Result is the outcome of normalizing a raw schedule
type Result struct {
	Schedule models.Schedule
	Skipped  []SkippedTalk
}

// Decode parses a raw schedule document
func Decode(body []byte) (*models.RawSchedule, error) {
	var raw models.RawSchedule
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode schedule: %w", err)
	}
	return &raw, nil
}

// Validate checks that schedule.conference.days[0].rooms exists and is not empty
func Validate(raw *models.RawSchedule) error {
	switch {
	case raw == nil:
		return fmt.Errorf("%w: empty payload", ErrNoSchedule)
	case raw.Schedule == nil:
		return fmt.Errorf("%w: missing schedule", ErrNoSchedule)
	case raw.Schedule.Conference == nil:
		return fmt.Errorf("%w: missing conference", ErrNoSchedule)
	case len(raw.Schedule.Conference.Days) == 0:
		return fmt.Errorf("%w: missing days", ErrNoSchedule)
	case len(raw.Schedule.Conference.Days[0].Rooms) == 0:
		return fmt.Errorf("%w: first day has no rooms", ErrNoSchedule)
	}
	return nil
}

// Normalize validates raw and maps the rooms of its first day into a schedule.
// Talks that cannot be normalized are left out and listed in Result.Skipped.
func Normalize(raw *models.RawSchedule) (Result, error) {
	if err := Validate(raw); err != nil {
		return Result{}, err
	}

	day := raw.Schedule.Conference.Days[0]
	result := Result{
		Schedule: models.Schedule{Rooms: make([]models.RoomSchedule, 0, len(day.Rooms))},
	}

	for _, room := range day.Rooms {
		talks := make([]models.Talk, 0, len(room.Talks))
		for i, rawTalk := range room.Talks {
			talk, err := NormalizeTalk(rawTalk)
			if err != nil {
				result.Skipped = append(result.Skipped, SkippedTalk{
					Room:  room.Name,
					Index: i,
					Title: rawTalk.Title,
					Err:   err,
				})
				continue
			}
			talks = append(talks, talk)
		}
		result.Schedule.Rooms = append(result.Schedule.Rooms, models.RoomSchedule{
			Room:  room.Name,
			Talks: talks,
		})
	}

	return result, nil
}

// NormalizeTalk converts a single raw talk. Instants are kept in UTC.
func NormalizeTalk(raw models.RawTalk) (models.Talk, error) {
	if raw.DecodeErr != nil {
		return models.Talk{}, fmt.Errorf("malformed talk record: %w", raw.DecodeErr)
	}

	start, err := time.Parse(time.RFC3339, raw.Date)
	if err != nil {
		return models.Talk{}, fmt.Errorf("invalid start %q: %w", raw.Date, err)
	}

	duration, err := ParseDuration(raw.Duration)
	if err != nil {
		return models.Talk{}, err
	}

	start = start.UTC()
	return models.Talk{
		Speaker:  JoinSpeakers(raw.Persons),
		Title:    raw.Title,
		Subtitle: raw.Subtitle,
		Start:    start,
		End:      start.Add(duration),
	}, nil
}

// JoinSpeakers joins the public names of all persons with ", " in their original order
func JoinSpeakers(persons []models.RawPerson) string {
	names := make([]string, 0, len(persons))
	for _, p := range persons {
		names = append(names, p.PublicName)
	}
	return strings.Join(names, ", ")
}
