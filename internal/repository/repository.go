// Package repository persists users and exercise entries in PostgreSQL.
package repository

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/deppfellow/exercise-tracker/internal/errs"
	"github.com/deppfellow/exercise-tracker/internal/model"
	"github.com/deppfellow/exercise-tracker/internal/validation"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// UsernameTakenMessage is reported when registration hits the unique constraint.
const UsernameTakenMessage = "username already taken"

// NewDuplicateUsernameError is the error every store returns for a taken username.
func NewDuplicateUsernameError() *errs.HTTPError {
	return errs.NewDuplicateKeyError(UsernameTakenMessage)
}

// NewExercise checks draft the way the store does before insert and produces
// the record to persist. The first failing field decides the error.
func NewExercise(draft model.ExerciseDraft, now time.Time) (model.Exercise, error) {
	if err := validation.Struct(&draft); err != nil {
		return model.Exercise{}, err
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(draft.Duration), 64)
	if err != nil || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return model.Exercise{}, errs.NewFieldValidationError("duration", "duration must be a number")
	}

	date := now.UTC()
	if draft.Date != nil {
		date = draft.Date.UTC()
	}

	return model.Exercise{
		Base:        model.Base{ID: model.NewID(), CreatedAt: now.UTC()},
		UserID:      draft.UserID,
		Description: draft.Description,
		Duration:    duration,
		Date:        date,
	}, nil
}

func wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
