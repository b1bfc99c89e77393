package repository

import (
	"github.com/deppfellow/exercise-tracker/internal/server"
)

// Repositories holds the Postgres-backed stores built on the shared pool.
type Repositories struct {
	User     *UserRepository
	Exercise *ExerciseRepository
}

func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		User:     NewUserRepository(s.DB.Pool),
		Exercise: NewExerciseRepository(s.DB.Pool),
	}
}
