package progress

import (
	"encoding/json"
	"fmt"

	"vedaverse/backend/models"
)

// Encode serializes a record into the string form kept in storage.
func Encode(p models.ProgressRecord) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode progress: %w", err)
	}
	return string(data), nil
}

// Decode parses a stored record and restores its invariants. Blobs whose
// shape does not match the record return an error.
func Decode(raw string) (models.ProgressRecord, error) {
	var p models.ProgressRecord
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return models.ProgressRecord{}, fmt.Errorf("decode progress: %w", err)
	}
	p.Normalize()
	return p, nil
}
