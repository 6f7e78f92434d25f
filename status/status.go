// Package status holds the review state machine shared by events, artists
// and verification requests, plus the derived schedule phase for events.
package status

import (
	"errors"
	"fmt"
	"time"
)

// Review is the moderation state of a submitted entity.
type Review string

const (
	Pending  Review = "Pending"
	Approved Review = "Approved"
	Rejected Review = "Rejected"
)

var (
	ErrAlreadyDecided = errors.New("status: review already decided")
	ErrUnknownStatus  = errors.New("status: unknown review status")
)

// Valid reports whether s is one of the known review states.
func (s Review) Valid() bool {
	switch s {
	case Pending, Approved, Rejected:
		return true
	}
	return false
}

// Decided reports whether s is terminal.
func (s Review) Decided() bool {
	return s == Approved || s == Rejected
}

// Transition validates a move from the current state to next.
// Pending -> Approved|Rejected; decisions are terminal.
func Transition(current, next Review) error {
	if !next.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, next)
	}
	if current.Decided() {
		return fmt.Errorf("%w: %s", ErrAlreadyDecided, current)
	}
	return nil
}

// Phase is the display state of a scheduled event. It is never stored;
// callers derive it from the event window at read time.
type Phase string

const (
	Upcoming Phase = "Upcoming"
	Live     Phase = "Live"
	Past     Phase = "Past"
)

// PhaseAt derives the phase for an event window at the given instant.
// A non-empty override (admin-set) wins over the derived value.
func PhaseAt(start, end time.Time, override Phase, now time.Time) Phase {
	if override != "" {
		return override
	}
	switch {
	case now.Before(start):
		return Upcoming
	case end.IsZero() || now.Before(end):
		return Live
	default:
		return Past
	}
}
