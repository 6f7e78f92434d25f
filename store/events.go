package store

import (
	"time"

	"cloudstage/models"
	"cloudstage/status"
)

// EventStore wraps the events collection with its review workflow.
type EventStore struct {
	c *Collection[models.Event]
}

func byEventID(id string) func(models.Event) bool {
	return func(e models.Event) bool { return e.EventID == id }
}

// Add prepends a new event. Submissions always enter review as Pending.
func (s *EventStore) Add(event models.Event) error {
	event.Status = status.Pending
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	return s.c.Prepend(event)
}

// Update replaces the event by id. Editing resets the review status to
// Pending so the event goes through re-approval.
func (s *EventStore) Update(event models.Event) error {
	return s.c.Update(byEventID(event.EventID), func(existing *models.Event) error {
		event.Status = status.Pending
		event.CreatedAt = existing.CreatedAt
		event.UpdatedAt = time.Now()
		*existing = event
		return nil
	})
}

// SetStatus patches only the review status field.
func (s *EventStore) SetStatus(id string, next status.Review) error {
	return s.c.Update(byEventID(id), func(e *models.Event) error {
		if !next.Valid() {
			return status.ErrUnknownStatus
		}
		e.Status = next
		return nil
	})
}

// SetBoosted flips the boosted flag.
func (s *EventStore) SetBoosted(id string, boosted bool) error {
	return s.c.Update(byEventID(id), func(e *models.Event) error {
		e.Boosted = boosted
		return nil
	})
}

// SetPhaseOverride pins the display phase; an empty phase restores deriving
// it from the event window.
func (s *EventStore) SetPhaseOverride(id string, phase status.Phase) error {
	return s.c.Update(byEventID(id), func(e *models.Event) error {
		e.PhaseOverride = phase
		return nil
	})
}

func (s *EventStore) Get(id string) (models.Event, error) {
	return s.c.Find(byEventID(id))
}

// All returns every event, most recent first.
func (s *EventStore) All() []models.Event {
	return s.c.All()
}

// Approved returns the publicly visible events.
func (s *EventStore) Approved() []models.Event {
	return s.c.Filter(func(e models.Event) bool { return e.Status == status.Approved })
}

// Pending returns events awaiting review.
func (s *EventStore) Pending() []models.Event {
	return s.c.Filter(func(e models.Event) bool { return e.Status == status.Pending })
}

// ByOwner returns every event submitted by the given artist email.
func (s *EventStore) ByOwner(email string) []models.Event {
	return s.c.Filter(func(e models.Event) bool { return e.ArtistEmail == email })
}
