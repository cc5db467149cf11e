package order

import (
	"time"

	"rentops/internal/core/domain/model/kernel"
)

// HistoryEntry is one record of the append-only status history. Entries are
// appended in the exact order transitions are accepted and are never
// reordered or coalesced.
type HistoryEntry struct {
	status    Status
	timestamp time.Time
	actorID   kernel.UUID
	notes     string
}

// NewHistoryEntry creates a history record for an accepted transition.
func NewHistoryEntry(status Status, timestamp time.Time, actorID kernel.UUID, notes string) HistoryEntry {
	return HistoryEntry{
		status:    status,
		timestamp: timestamp,
		actorID:   actorID,
		notes:     notes,
	}
}

// Status returns the status the order entered.
func (h HistoryEntry) Status() Status {
	return h.status
}

// Timestamp returns when the transition was accepted.
func (h HistoryEntry) Timestamp() time.Time {
	return h.timestamp
}

// ActorID returns who triggered the transition.
func (h HistoryEntry) ActorID() kernel.UUID {
	return h.actorID
}

// Notes returns the optional free-text note recorded with the transition.
func (h HistoryEntry) Notes() string {
	return h.notes
}
