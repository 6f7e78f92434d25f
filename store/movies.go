package store

import (
	"time"

	"cloudstage/models"
)

// MovieStore wraps the movies collection. Movies have no review workflow:
// an added movie is immediately visible.
type MovieStore struct {
	c *Collection[models.Movie]
}

func (s *MovieStore) Add(movie models.Movie) error {
	movie.CreatedAt = time.Now()
	return s.c.Prepend(movie)
}

func (s *MovieStore) Get(id string) (models.Movie, error) {
	return s.c.Find(func(m models.Movie) bool { return m.MovieID == id })
}

// All returns every movie, most recent first.
func (s *MovieStore) All() []models.Movie {
	return s.c.All()
}
