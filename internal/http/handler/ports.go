package handler

import (
	"context"
	"exercisetracker/internal/core"
	"exercisetracker/internal/store"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ExerciseTracker . ExerciseTracker
type ExerciseTracker interface {
	CreateUser(ctx context.Context, username string) (store.User, error)
	ListUsers(ctx context.Context) ([]store.User, error)
	AddExercise(ctx context.Context, input core.NewExercise) (core.ExerciseEntry, error)
	GetLog(ctx context.Context, query core.LogQuery) (core.ExerciseLog, error)
}

//counterfeiter:generate -o fake -fake-name RequestDecoder . RequestDecoder
type RequestDecoder interface {
	DecodeBody(r *http.Request, object any) error
}
