package core

import (
	"context"
	"exercisetracker/internal/store"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	ValidID(id string) bool
	CreateUser(ctx context.Context, username string) (store.User, error)
	ListUsers(ctx context.Context) ([]store.User, error)
	GetUser(ctx context.Context, id string) (store.User, error)
	CreateExercise(ctx context.Context, exercise store.Exercise) (store.Exercise, error)
	ListExercises(ctx context.Context, filter store.ExerciseFilter) ([]store.Exercise, error)
}
