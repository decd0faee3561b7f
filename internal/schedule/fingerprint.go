package schedule

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// FingerprintOf returns the hex SHA-256 of the canonical encoding of a raw
// JSON payload. Object keys are sorted and numbers are kept verbatim, so two
// payloads that differ only in key order share a fingerprint.
func FingerprintOf(body []byte) (string, error) {
	canonical, err := Canonicalize(body)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// Canonicalize re-encodes a JSON document with sorted object keys and no insignificant whitespace
func Canonicalize(body []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode payload for fingerprint: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("failed to decode payload for fingerprint: trailing data")
	}

	// encoding/json writes map keys in sorted order
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload for fingerprint: %w", err)
	}
	return out, nil
}

// FingerprintSource provides the last persisted fingerprint
type FingerprintSource interface {
	LoadFingerprint(ctx context.Context) (string, bool)
}

// Detector decides whether a payload differs from the last persisted one
type Detector struct {
	source FingerprintSource
}

// NewDetector creates a change detector reading from source
func NewDetector(source FingerprintSource) *Detector {
	return &Detector{source: source}
}

// Changed reports whether fingerprint differs from the stored one.
// A missing stored fingerprint always counts as a change.
func (d *Detector) Changed(ctx context.Context, fingerprint string) bool {
	stored, ok := d.source.LoadFingerprint(ctx)
	if !ok || stored == "" {
		return true
	}
	return stored != fingerprint
}
