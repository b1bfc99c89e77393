package repository

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/exercise-tracker/internal/errs"
	"github.com/deppfellow/exercise-tracker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLogQueryUserOnly(t *testing.T) {
	user := model.NewID()

	query, args, err := buildLogQuery(model.LogFilter{UserID: user})
	require.NoError(t, err)

	assert.Equal(t,
		`SELECT "description", "duration", "date" FROM "exercise_logs" WHERE ("user_id" = $1) ORDER BY "date" DESC, "created_at" DESC, "id" DESC`,
		query)
	assert.Equal(t, []any{user.String()}, args)
}

func TestBuildLogQueryWithBoundsAndLimit(t *testing.T) {
	user := model.NewID()
	from := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	query, args, err := buildLogQuery(model.LogFilter{UserID: user, From: &from, To: &to, Limit: 2})
	require.NoError(t, err)

	assert.Contains(t, query, `("user_id" = $1)`)
	assert.Contains(t, query, `("date" > $2)`)
	assert.Contains(t, query, `("date" < $3)`)
	assert.Contains(t, query, `LIMIT $4`)
	assert.Less(t, strings.Index(query, "ORDER BY"), strings.Index(query, "LIMIT"))
	require.Len(t, args, 4)
	assert.Equal(t, user.String(), args[0])
	assert.Equal(t, from, args[1])
	assert.Equal(t, to, args[2])
}

func TestBuildLogQueryIgnoresNonPositiveLimit(t *testing.T) {
	query, _, err := buildLogQuery(model.LogFilter{UserID: model.NewID(), Limit: 0})
	require.NoError(t, err)
	assert.NotContains(t, query, "LIMIT")

	query, _, err = buildLogQuery(model.LogFilter{UserID: model.NewID(), Limit: -3})
	require.NoError(t, err)
	assert.NotContains(t, query, "LIMIT")
}

func TestBuildInsertExercise(t *testing.T) {
	e, err := NewExercise(model.ExerciseDraft{UserID: model.NewID(), Description: "run", Duration: "30"}, time.Now())
	require.NoError(t, err)

	stmt, args, err := buildInsertExercise(e)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stmt, `INSERT INTO "exercise_logs"`), stmt)
	assert.Len(t, args, 6)
}

func TestNewExercise(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	user := model.NewID()

	e, err := NewExercise(model.ExerciseDraft{UserID: user, Description: "swim", Duration: "12.5"}, now)
	require.NoError(t, err)
	assert.Equal(t, user, e.UserID)
	assert.InDelta(t, 12.5, e.Duration, 0.0001)
	assert.Equal(t, now, e.Date)
	assert.False(t, e.ID.IsZero())

	supplied := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	e, err = NewExercise(model.ExerciseDraft{UserID: user, Description: "swim", Duration: "5", Date: &supplied}, now)
	require.NoError(t, err)
	assert.Equal(t, supplied, e.Date)
}

func TestNewExerciseFirstFailingField(t *testing.T) {
	_, err := NewExercise(model.ExerciseDraft{}, time.Now())
	require.Error(t, err)
	assert.Equal(t, "Validation failed", err.Error())

	cases := map[string]model.ExerciseDraft{
		"description is required":   {Duration: "10"},
		"duration is required":      {Description: "run"},
		"duration must be a number": {Description: "run", Duration: "ten"},
	}
	for want, draft := range cases {
		_, err := NewExercise(draft, time.Now())
		require.Error(t, err)
		assert.Equal(t, want, firstFieldError(t, err), want)
	}
}

func TestNewExerciseDurationParsing(t *testing.T) {
	accepted := map[string]float64{
		"30":     30,
		" 30 ":   30,
		"12.5":   12.5,
		"1e3":    1000,
		"-5":     -5,
		"+2.25":  2.25,
		"\t7\n": 7,
	}
	for raw, want := range accepted {
		e, err := NewExercise(model.ExerciseDraft{Description: "run", Duration: raw}, time.Now())
		require.NoError(t, err, "duration %q", raw)
		assert.Equal(t, want, e.Duration, "duration %q", raw)
	}

	for _, raw := range []string{"ten", "   ", "30min", "NaN", "Inf", "-Infinity", "1,5"} {
		_, err := NewExercise(model.ExerciseDraft{Description: "run", Duration: raw}, time.Now())
		require.Error(t, err, "duration %q", raw)
		assert.Equal(t, "duration must be a number", firstFieldError(t, err), "duration %q", raw)
	}
}

func firstFieldError(t *testing.T, err error) string {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	_, message := httpErr.Normalize()
	return message
}
