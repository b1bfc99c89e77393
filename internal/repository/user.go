package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/exercise-tracker/internal/model"
	"github.com/deppfellow/exercise-tracker/internal/sqlerr"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create inserts a user under a fresh id. Uniqueness of username is left to
// the users_username_key constraint.
func (r *UserRepository) Create(ctx context.Context, username string) (*model.User, error) {
	const stmt = `INSERT INTO users (id, username) VALUES ($1, $2) RETURNING created_at`

	user := model.User{Base: model.Base{ID: model.NewID()}, Username: username}

	err := r.pool.QueryRow(ctx, stmt, user.ID.String(), username).Scan(&user.CreatedAt)
	if err != nil {
		if sqlerr.ErrCode(err) == sqlerr.UniqueViolation {
			return nil, NewDuplicateUsernameError()
		}
		return nil, wrap("insert user", err)
	}

	return &user, nil
}

// GetByID returns ErrNotFound when no user has id.
func (r *UserRepository) GetByID(ctx context.Context, id model.ID) (*model.User, error) {
	const query = `SELECT id, username, created_at FROM users WHERE id = $1`

	var (
		rawID uuid.UUID
		user  model.User
	)

	err := r.pool.QueryRow(ctx, query, id.String()).Scan(&rawID, &user.Username, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, wrap("select user", err)
	}

	user.ID = model.ID(rawID)
	return &user, nil
}
