package store

import (
	"errors"
	"fmt"
	"time"

	"cloudstage/models"
	"cloudstage/status"
)

var (
	// ErrVerificationExists means a request was already submitted or decided.
	ErrVerificationExists = errors.New("store: verification request already submitted")
	// ErrNoVerification means no request exists to review.
	ErrNoVerification = errors.New("store: no verification request")
)

// ArtistStore wraps the artists collection with approval, verification and
// follower operations.
type ArtistStore struct {
	c *Collection[models.Artist]
}

func byArtistID(id string) func(models.Artist) bool {
	return func(a models.Artist) bool { return a.ArtistID == id }
}

// Add registers a new artist pending admin approval. Email is the artist's
// login identity; the uniqueness check and the insert run under one lock.
func (s *ArtistStore) Add(artist models.Artist) error {
	artist.Status = status.Pending
	artist.CreatedAt = time.Now()
	created, err := s.c.InsertIfAbsent(func(a models.Artist) bool {
		return a.Email == artist.Email
	}, artist)
	if err != nil {
		return err
	}
	if !created {
		return ErrEmailTaken
	}
	return nil
}

// SetStatus decides the artist's review. Decisions are terminal; a rejection
// stores the supplied reason.
func (s *ArtistStore) SetStatus(id string, next status.Review, reason string) error {
	return s.c.Update(byArtistID(id), func(a *models.Artist) error {
		if err := status.Transition(a.Status, next); err != nil {
			return err
		}
		a.Status = next
		if next == status.Rejected {
			a.RejectionReason = reason
		}
		return nil
	})
}

// SubmitVerification attaches a Pending verification request. Only one
// request is allowed; a decided request is terminal.
func (s *ArtistStore) SubmitVerification(id string, req models.VerificationRequest) error {
	return s.c.Update(byArtistID(id), func(a *models.Artist) error {
		if a.Verification != nil {
			return fmt.Errorf("%w: %s", ErrVerificationExists, a.Verification.Status)
		}
		req.Status = status.Pending
		req.SubmittedAt = time.Now()
		a.Verification = &req
		return nil
	})
}

// SetVerificationStatus decides the embedded request. Approval also marks
// the artist verified.
func (s *ArtistStore) SetVerificationStatus(id string, next status.Review, reason string) error {
	return s.c.Update(byArtistID(id), func(a *models.Artist) error {
		if a.Verification == nil {
			return ErrNoVerification
		}
		if err := status.Transition(a.Verification.Status, next); err != nil {
			return err
		}
		a.Verification.Status = next
		if next == status.Rejected {
			a.Verification.RejectionReason = reason
		}
		if next == status.Approved {
			a.IsVerified = true
		}
		return nil
	})
}

// Follow adds the user email to the artist's follower set.
func (s *ArtistStore) Follow(id, email string) error {
	return s.c.Update(byArtistID(id), func(a *models.Artist) error {
		if a.FollowedBy(email) {
			return nil
		}
		a.Followers = append(a.Followers, email)
		return nil
	})
}

// Unfollow removes the user email from the artist's follower set.
func (s *ArtistStore) Unfollow(id, email string) error {
	return s.c.Update(byArtistID(id), func(a *models.Artist) error {
		kept := a.Followers[:0]
		for _, f := range a.Followers {
			if f != email {
				kept = append(kept, f)
			}
		}
		a.Followers = kept
		return nil
	})
}

func (s *ArtistStore) Get(id string) (models.Artist, error) {
	return s.c.Find(byArtistID(id))
}

// ByEmail looks up an artist by login identity.
func (s *ArtistStore) ByEmail(email string) (models.Artist, error) {
	return s.c.Find(func(a models.Artist) bool { return a.Email == email })
}

func (s *ArtistStore) All() []models.Artist {
	return s.c.All()
}

// Approved returns the publicly listed artists.
func (s *ArtistStore) Approved() []models.Artist {
	return s.c.Filter(func(a models.Artist) bool { return a.Status == status.Approved })
}

// Pending returns artists awaiting review.
func (s *ArtistStore) Pending() []models.Artist {
	return s.c.Filter(func(a models.Artist) bool { return a.Status == status.Pending })
}

// PendingVerifications returns artists with an undecided verification request.
func (s *ArtistStore) PendingVerifications() []models.Artist {
	return s.c.Filter(func(a models.Artist) bool {
		return a.Verification != nil && a.Verification.Status == status.Pending
	})
}

// FollowedBy returns the artists the given user email follows.
func (s *ArtistStore) FollowedBy(email string) []models.Artist {
	return s.c.Filter(func(a models.Artist) bool { return a.FollowedBy(email) })
}
