package core

import (
	"exercisetracker/internal/store"
	"time"
)

type NewExercise struct {
	UserID      string
	Description string
	Duration    int
	Date        *time.Time // nil means today
}

type LogQuery struct {
	UserID string
	From   *time.Time
	To     *time.Time
	Limit  int
}

// ExerciseEntry pairs a freshly logged exercise with its owner.
type ExerciseEntry struct {
	User     store.User
	Exercise store.Exercise
}

type ExerciseLog struct {
	User      store.User
	Exercises []store.Exercise
}

func (l ExerciseLog) Count() int {
	return len(l.Exercises)
}
