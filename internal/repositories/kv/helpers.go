package kv

import (
	"encoding/json"
	"time"

	apperrors "github.com/SAP-F-2025/practice-quiz/internal/errors"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// IDLength is the size of generated test and result ids. Collisions are
// treated as negligible and never checked.
const IDLength = 10

// timestampLayout matches ISO-8601 with millisecond precision in UTC.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// IDGenerator returns a fresh opaque identifier.
type IDGenerator func() (string, error)

// NewNanoID generates a 10 character URL-safe id.
func NewNanoID() (string, error) {
	return gonanoid.New(IDLength)
}

// SharedHelpers bundles the id source, clock and JSON codec used by every
// kv repository.
type SharedHelpers struct {
	newID IDGenerator
	now   func() time.Time
}

func NewSharedHelpers(newID IDGenerator, now func() time.Time) *SharedHelpers {
	if newID == nil {
		newID = NewNanoID
	}
	if now == nil {
		now = time.Now
	}
	return &SharedHelpers{newID: newID, now: now}
}

func (h *SharedHelpers) NewID() (string, error) {
	return h.newID()
}

func (h *SharedHelpers) Timestamp() string {
	return h.now().UTC().Format(timestampLayout)
}

func (h *SharedHelpers) encode(key string, v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, apperrors.NewStoreError("encode", key, err)
	}
	return data, nil
}

func (h *SharedHelpers) decode(key string, data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return apperrors.NewStoreError("decode", key, err)
	}
	return nil
}
