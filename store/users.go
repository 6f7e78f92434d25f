package store

import (
	"errors"
	"time"

	"cloudstage/models"
)

// ErrEmailTaken means the email is already registered. Email is the login
// identity for both users and artists, so it must stay unique.
var ErrEmailTaken = errors.New("store: email already registered")

// UserStore wraps the registered users collection.
type UserStore struct {
	c *Collection[models.User]
}

func byUserEmail(email string) func(models.User) bool {
	return func(u models.User) bool { return u.Email == email }
}

// Add registers the user. The uniqueness check on email and the insert run
// under one lock, so concurrent registrations cannot double-insert.
func (s *UserStore) Add(user models.User) error {
	user.CreatedAt = time.Now()
	created, err := s.c.InsertIfAbsent(byUserEmail(user.Email), user)
	if err != nil {
		return err
	}
	if !created {
		return ErrEmailTaken
	}
	return nil
}

func (s *UserStore) ByEmail(email string) (models.User, error) {
	return s.c.Find(byUserEmail(email))
}

func (s *UserStore) ByID(id string) (models.User, error) {
	return s.c.Find(func(u models.User) bool { return u.UserID == id })
}

// SetRefreshToken stores the hashed refresh token and login time.
func (s *UserStore) SetRefreshToken(email, hashed string, expiry time.Time) error {
	return s.c.Update(byUserEmail(email), func(u *models.User) error {
		u.RefreshToken = hashed
		u.RefreshExpiry = expiry
		u.LastLogin = time.Now()
		return nil
	})
}

// ClearRefreshToken invalidates the stored refresh token on logout.
func (s *UserStore) ClearRefreshToken(email string) error {
	return s.c.Update(byUserEmail(email), func(u *models.User) error {
		u.RefreshToken = ""
		u.RefreshExpiry = time.Time{}
		return nil
	})
}

// AddRole grants a role to the user if not already present.
func (s *UserStore) AddRole(email, role string) error {
	return s.c.Update(byUserEmail(email), func(u *models.User) error {
		if u.HasRole(role) {
			return nil
		}
		u.Role = append(u.Role, role)
		return nil
	})
}

// SetSubscription replaces the user's subscription record.
func (s *UserStore) SetSubscription(email string, sub *models.Subscription) error {
	return s.c.Update(byUserEmail(email), func(u *models.User) error {
		u.Subscription = sub
		return nil
	})
}

// ConsumeSubscriptionEvent counts one event against the user's quota.
func (s *UserStore) ConsumeSubscriptionEvent(email string) error {
	return s.c.Update(byUserEmail(email), func(u *models.User) error {
		if u.Subscription != nil {
			u.Subscription.EventsUsed++
		}
		return nil
	})
}
