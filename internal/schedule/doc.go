// Package schedule turns the pretalx schedule export into the normalized
// per-room schedule shown by the kiosk, and fingerprints raw payloads so
// unchanged schedules are not processed twice.
package schedule
