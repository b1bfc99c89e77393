package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/exercise-tracker/internal/errs"
	"github.com/deppfellow/exercise-tracker/internal/model"
	"github.com/deppfellow/exercise-tracker/internal/observability"
	"github.com/deppfellow/exercise-tracker/internal/repository"
	"github.com/rs/zerolog"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Register stores a new user. username is expected to be validated already;
// a taken username surfaces as the store's duplicate key error.
func (s *UserService) Register(ctx context.Context, username string) (*model.User, error) {
	user, err := s.users.Create(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}

	observability.RecordUserRegistered()

	zerolog.Ctx(ctx).Info().
		Str("user_id", user.ID.String()).
		Msg("user registered")

	return user, nil
}

// resolveUser parses raw and loads the user. A malformed id and a missing
// user are reported identically with message.
func resolveUser(ctx context.Context, users UserStore, raw, message string) (*model.User, error) {
	id, err := model.ParseID(raw)
	if err != nil {
		return nil, errs.NewUnknownReferenceError(message)
	}

	user, err := users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.NewUnknownReferenceError(message)
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	return user, nil
}
