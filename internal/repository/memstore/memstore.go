// Package memstore is an in-memory stand-in for the Postgres repositories.
// It keeps the same uniqueness, filtering and ordering rules.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/deppfellow/exercise-tracker/internal/model"
	"github.com/deppfellow/exercise-tracker/internal/repository"
)

// Store holds users and exercises for a single test.
type Store struct {
	mu        sync.RWMutex
	users     map[model.ID]model.User
	usernames map[string]model.ID
	exercises []model.Exercise
	now       func() time.Time

	// Fail, when set, is returned by every operation to simulate a store outage.
	Fail error
}

func New() *Store {
	return &Store{
		users:     make(map[model.ID]model.User),
		usernames: make(map[string]model.ID),
		now:       time.Now,
	}
}

// WithClock makes the store stamp records using now.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Users returns a view of the store satisfying the user store contract.
func (s *Store) Users() *Users { return &Users{s} }

// Exercises returns a view of the store satisfying the exercise store contract.
func (s *Store) Exercises() *Exercises { return &Exercises{s} }

// ExerciseCount reports how many entries were stored.
func (s *Store) ExerciseCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.exercises)
}

// UserCount reports how many users were stored.
func (s *Store) UserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

type Users struct{ s *Store }

func (u *Users) Create(_ context.Context, username string) (*model.User, error) {
	s := u.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Fail != nil {
		return nil, s.Fail
	}
	if _, taken := s.usernames[username]; taken {
		return nil, repository.NewDuplicateUsernameError()
	}

	user := model.User{Base: model.Base{ID: model.NewID(), CreatedAt: s.now().UTC()}, Username: username}
	s.users[user.ID] = user
	s.usernames[username] = user.ID

	return &user, nil
}

func (u *Users) GetByID(_ context.Context, id model.ID) (*model.User, error) {
	s := u.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.Fail != nil {
		return nil, s.Fail
	}
	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

type Exercises struct{ s *Store }

func (x *Exercises) Create(_ context.Context, draft model.ExerciseDraft) (*model.Exercise, error) {
	s := x.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Fail != nil {
		return nil, s.Fail
	}

	exercise, err := repository.NewExercise(draft, s.now())
	if err != nil {
		return nil, err
	}

	s.exercises = append(s.exercises, exercise)
	return &exercise, nil
}

func (x *Exercises) List(_ context.Context, f model.LogFilter) ([]model.Exercise, error) {
	s := x.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.Fail != nil {
		return nil, s.Fail
	}

	// newest insert first, so the stable sort below breaks date ties the way
	// ORDER BY created_at DESC does
	matched := make([]model.Exercise, 0)
	for i := len(s.exercises) - 1; i >= 0; i-- {
		if e := s.exercises[i]; f.Matches(e) {
			matched = append(matched, model.Exercise{
				UserID:      e.UserID,
				Description: e.Description,
				Duration:    e.Duration,
				Date:        e.Date,
			})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})

	if f.Limit > 0 && len(matched) > f.Limit {
		matched = matched[:f.Limit]
	}

	return matched, nil
}
