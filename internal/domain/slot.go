package domain

import "time"

// CandidateSlot represents a bookable time window produced by the slot
// generator. Slots are ephemeral: computed per request, serialized into
// the response and discarded, never persisted.
type CandidateSlot struct {
	Start time.Time
	End   time.Time
}

// Duration returns the slot length
func (s CandidateSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Overlaps reports whether [s.Start, s.End) overlaps [start, end)
// using strict half-open interval semantics
func (s CandidateSlot) Overlaps(start, end time.Time) bool {
	return s.Start.Before(end) && s.End.After(start)
}
