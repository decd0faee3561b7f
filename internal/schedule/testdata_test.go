package schedule_test

// samplePayload mirrors the shape of a pretalx schedule.json export
const samplePayload = `{
  "$schema": "https://c3voc.de/schedule/schema.json",
  "generator": {"name": "pretalx", "version": "2024.1.0"},
  "schedule": {
    "version": "0.7",
    "conference": {
      "acronym": "lit-2024",
      "title": "Linux Infotag 2024",
      "time_zone_name": "Europe/Berlin",
      "days": [
        {
          "index": 1,
          "date": "2024-04-20",
          "rooms": {
            "Raum A": [
              {"id": 1, "date": "2024-04-20T10:00:00+02:00", "duration": "00:30", "title": "Opening", "subtitle": "", "persons": [{"public_name": "Ada"}]},
              {"id": 2, "date": "2024-04-20T10:30:00+02:00", "duration": "00:30", "title": "Kernel news", "subtitle": "What changed", "persons": [{"public_name": "Linus"}, {"public_name": "Greg"}]}
            ],
            "Raum B": [
              {"id": 3, "date": "2024-04-20T11:15:00+02:00", "duration": "01:00", "title": "Workshop", "subtitle": "", "persons": []}
            ]
          }
        },
        {
          "index": 2,
          "date": "2024-04-21",
          "rooms": {
            "Raum C": [
              {"id": 4, "date": "2024-04-21T10:00:00+02:00", "duration": "00:30", "title": "Day two", "subtitle": "", "persons": []}
            ]
          }
        }
      ]
    }
  }
}`
