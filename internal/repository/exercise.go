package repository

import (
	"context"
	"time"

	"github.com/deppfellow/exercise-tracker/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ExerciseRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

func NewExerciseRepository(pool *pgxpool.Pool) *ExerciseRepository {
	return &ExerciseRepository{pool: pool, now: time.Now}
}

// Create validates draft and inserts it.
func (r *ExerciseRepository) Create(ctx context.Context, draft model.ExerciseDraft) (*model.Exercise, error) {
	exercise, err := NewExercise(draft, r.now())
	if err != nil {
		return nil, err
	}

	stmt, args, err := buildInsertExercise(exercise)
	if err != nil {
		return nil, wrap("build exercise insert", err)
	}

	if _, err := r.pool.Exec(ctx, stmt, args...); err != nil {
		return nil, wrap("insert exercise", err)
	}

	return &exercise, nil
}

// List returns the entries matching f, newest first. Only description,
// duration and date are populated.
func (r *ExerciseRepository) List(ctx context.Context, f model.LogFilter) ([]model.Exercise, error) {
	query, args, err := buildLogQuery(f)
	if err != nil {
		return nil, wrap("build log query", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrap("query exercises", err)
	}
	defer rows.Close()

	exercises := make([]model.Exercise, 0)
	for rows.Next() {
		e := model.Exercise{UserID: f.UserID}
		if err := rows.Scan(&e.Description, &e.Duration, &e.Date); err != nil {
			return nil, wrap("scan exercise", err)
		}
		e.Date = e.Date.UTC()
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("iterate exercises", err)
	}

	return exercises, nil
}
