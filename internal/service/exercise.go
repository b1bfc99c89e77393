package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/deppfellow/exercise-tracker/internal/errs"
	"github.com/deppfellow/exercise-tracker/internal/model"
	"github.com/deppfellow/exercise-tracker/internal/observability"
	"github.com/rs/zerolog"
)

const (
	UnknownEntryUserMessage = "unknown _id"
	UnknownLogUserMessage   = "unknown userId"
)

// leadingInt matches the integer prefix of a limit such as "10abc".
var leadingInt = regexp.MustCompile(`^\s*[+-]?\d+`)

type ExerciseService struct {
	users     UserStore
	exercises ExerciseStore
}

func NewExerciseService(users UserStore, exercises ExerciseStore) *ExerciseService {
	return &ExerciseService{
		users:     users,
		exercises: exercises,
	}
}

// AddExerciseInput is an exercise as submitted. Duration and Date are raw text.
type AddExerciseInput struct {
	UserID      string
	Description string
	Duration    string
	Date        string
}

// AddExercise logs an entry for an existing user. An unparseable Date is
// ignored and the entry is dated now.
func (s *ExerciseService) AddExercise(ctx context.Context, in AddExerciseInput) (*model.User, *model.Exercise, error) {
	user, err := resolveUser(ctx, s.users, in.UserID, UnknownEntryUserMessage)
	if err != nil {
		return nil, nil, err
	}

	draft := model.ExerciseDraft{
		UserID:      user.ID,
		Description: in.Description,
		Duration:    in.Duration,
	}
	if date, ok := model.ParseDate(in.Date); ok {
		draft.Date = &date
	}

	exercise, err := s.exercises.Create(ctx, draft)
	if err != nil {
		return nil, nil, fmt.Errorf("add exercise: %w", err)
	}

	observability.RecordExerciseLogged(exercise.Date)

	zerolog.Ctx(ctx).Info().
		Str("user_id", user.ID.String()).
		Time("date", exercise.Date).
		Msg("exercise logged")

	return user, exercise, nil
}

// LogQuery is a log request as submitted. Every field is raw text.
type LogQuery struct {
	UserID string
	From   string
	To     string
	Limit  string
}

// ExerciseLog is a user's filtered log. From and To are the bounds that were
// actually applied.
type ExerciseLog struct {
	User    *model.User
	From    *time.Time
	To      *time.Time
	Entries []model.Exercise
}

// Log returns the user's entries newest first. Unparseable From, To and Limit
// values are dropped rather than rejected.
func (s *ExerciseService) Log(ctx context.Context, q LogQuery) (*ExerciseLog, error) {
	if q.UserID == "" {
		return nil, errs.NewFieldValidationError("userId", UnknownLogUserMessage)
	}

	user, err := resolveUser(ctx, s.users, q.UserID, UnknownLogUserMessage)
	if err != nil {
		return nil, err
	}

	filter := model.LogFilter{
		UserID: user.ID,
		Limit:  parseLimit(q.Limit),
	}
	if from, ok := model.ParseDate(q.From); ok {
		filter.From = &from
	}
	if to, ok := model.ParseDate(q.To); ok {
		filter.To = &to
	}

	entries, err := s.exercises.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	observability.RecordLogQuery(len(entries))

	return &ExerciseLog{
		User:    user,
		From:    filter.From,
		To:      filter.To,
		Entries: entries,
	}, nil
}

// parseLimit reads the leading integer of raw. Anything not positive means no cap.
func parseLimit(raw string) int {
	digits := strings.TrimSpace(leadingInt.FindString(raw))
	if digits == "" {
		return 0
	}

	limit, err := strconv.Atoi(digits)
	if err != nil || limit <= 0 {
		return 0
	}
	return limit
}
