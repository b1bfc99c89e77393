package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/deppfellow/exercise-tracker/internal/errs"
	"github.com/deppfellow/exercise-tracker/internal/model"
	"github.com/deppfellow/exercise-tracker/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) *time.Time {
	t := time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestUsersUniqueUsername(t *testing.T) {
	ctx := context.Background()
	users := New().Users()

	first, err := users.Create(ctx, "alice")
	require.NoError(t, err)

	_, err = users.Create(ctx, "alice")
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, errs.KindDuplicateKey, httpErr.Kind)
	assert.Equal(t, "username already taken", httpErr.Message)

	found, err := users.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)

	_, err = users.GetByID(ctx, model.NewID())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestExercisesListOrderingAndLimit(t *testing.T) {
	ctx := context.Background()
	store := New()
	user := model.NewID()

	for _, d := range []int{10, 1, 20, 10} {
		_, err := store.Exercises().Create(ctx, model.ExerciseDraft{UserID: user, Description: "run", Duration: "30", Date: day(d)})
		require.NoError(t, err)
	}
	_, err := store.Exercises().Create(ctx, model.ExerciseDraft{UserID: model.NewID(), Description: "other", Duration: "5", Date: day(15)})
	require.NoError(t, err)

	all, err := store.Exercises().List(ctx, model.LogFilter{UserID: user})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, *day(20), all[0].Date)
	assert.Equal(t, *day(10), all[1].Date)
	assert.Equal(t, *day(10), all[2].Date)
	assert.Equal(t, *day(1), all[3].Date)

	limited, err := store.Exercises().List(ctx, model.LogFilter{UserID: user, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, all[:2], limited)

	ranged, err := store.Exercises().List(ctx, model.LogFilter{UserID: user, From: day(5), To: day(15)})
	require.NoError(t, err)
	assert.Len(t, ranged, 2)
}

func TestExercisesCreateValidates(t *testing.T) {
	store := New()
	_, err := store.Exercises().Create(context.Background(), model.ExerciseDraft{UserID: model.NewID(), Duration: "30"})
	require.Error(t, err)
	assert.Equal(t, 0, store.ExerciseCount())
}

func TestFailInjection(t *testing.T) {
	store := New()
	store.Fail = errors.New("connection refused")

	_, err := store.Users().Create(context.Background(), "bob")
	assert.ErrorIs(t, err, store.Fail)
	assert.Equal(t, 0, store.UserCount())
}
