// Package service contains the business logic.
//
// It sits between the handler and repository layers. Services receive bound
// input from handlers, resolve and validate references, and call the stores.
package service

import (
	"context"

	"github.com/deppfellow/exercise-tracker/internal/model"
)

// UserStore is implemented by repository.UserRepository and memstore.Users.
type UserStore interface {
	Create(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id model.ID) (*model.User, error)
}

// ExerciseStore is implemented by repository.ExerciseRepository and memstore.Exercises.
type ExerciseStore interface {
	Create(ctx context.Context, draft model.ExerciseDraft) (*model.Exercise, error)
	List(ctx context.Context, f model.LogFilter) ([]model.Exercise, error)
}
