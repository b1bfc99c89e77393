package repository

import (
	"github.com/deppfellow/exercise-tracker/internal/model"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
)

const exerciseTable = "exercise_logs"

var dialect = goqu.Dialect("postgres")

// buildLogQuery renders the log query for f with $n placeholders.
//
// Bounds are exclusive. Rows come newest first; entries sharing a date are
// ordered by insertion, newest first, so repeated queries agree.
func buildLogQuery(f model.LogFilter) (string, []any, error) {
	ds := dialect.From(exerciseTable).
		Prepared(true).
		Select("description", "duration", "date").
		Where(goqu.C("user_id").Eq(f.UserID.String()))

	if f.From != nil {
		ds = ds.Where(goqu.C("date").Gt(*f.From))
	}
	if f.To != nil {
		ds = ds.Where(goqu.C("date").Lt(*f.To))
	}

	ds = ds.Order(
		goqu.C("date").Desc(),
		goqu.C("created_at").Desc(),
		goqu.C("id").Desc(),
	)

	if f.Limit > 0 {
		ds = ds.Limit(uint(f.Limit))
	}

	return ds.ToSQL()
}

// buildInsertExercise renders the insert for e.
func buildInsertExercise(e model.Exercise) (string, []any, error) {
	return dialect.Insert(exerciseTable).
		Prepared(true).
		Rows(goqu.Record{
			"id":          e.ID.String(),
			"user_id":     e.UserID.String(),
			"description": e.Description,
			"duration":    e.Duration,
			"date":        e.Date,
			"created_at":  e.CreatedAt,
		}).
		ToSQL()
}
