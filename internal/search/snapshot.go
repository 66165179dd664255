package search

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/vodleecher/leecher/internal/errors"
)

// Snapshot is a validated, read-only copy of criteria handed to background
// work. It may be read from any goroutine.
type Snapshot struct {
	ID      uuid.UUID `json:"id"`
	TakenAt time.Time `json:"taken_at"`
	Values  Values    `json:"criteria"`
}

// Err returns a validation error describing every recorded field error,
// or nil when none are recorded.
func (c *Criteria) Err() error {
	if !c.HasErrors() {
		return nil
	}

	details := make(map[string]any)
	for field, msgs := range c.ErrorMap() {
		details[field] = msgs
	}
	return apperrors.ValidationError("search criteria are invalid").WithDetails(details)
}

// Snapshot validates every field and, when nothing is wrong, returns a
// snapshot of a clone. Later edits to c do not affect the snapshot.
func (c *Criteria) Snapshot() (Snapshot, error) {
	if err := c.Validate(""); err != nil {
		return Snapshot{}, err
	}
	if err := c.Err(); err != nil {
		return Snapshot{}, err
	}

	clone := c.Clone()
	return Snapshot{
		ID:      uuid.New(),
		TakenAt: time.Now().UTC(),
		Values:  clone.Values(),
	}, nil
}
