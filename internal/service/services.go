package service

import (
	"github.com/deppfellow/exercise-tracker/internal/repository"
)

type Services struct {
	User     *UserService
	Exercise *ExerciseService
}

// NewServices wires the services over the Postgres repositories.
func NewServices(repos *repository.Repositories) *Services {
	return NewServicesWithStores(repos.User, repos.Exercise)
}

// NewServicesWithStores wires the services over any store implementation.
func NewServicesWithStores(users UserStore, exercises ExerciseStore) *Services {
	return &Services{
		User:     NewUserService(users),
		Exercise: NewExerciseService(users, exercises),
	}
}
