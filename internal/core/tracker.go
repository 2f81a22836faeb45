package core

import (
	"context"
	"errors"
	"exercisetracker/internal/store"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrUsernameTaken = errors.New("username already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrStore         = errors.New("store failure")
)

// Tracker creates users, logs their exercises and answers log queries.
type Tracker struct {
	logs *zap.SugaredLogger
	repo Repository
}

// NewTracker is a constructor function for the Tracker type.
func NewTracker(logger *zap.SugaredLogger, repo Repository) *Tracker {
	return &Tracker{
		logs: logger,
		repo: repo,
	}
}

// CreateUser persists a new user. Usernames must be non-blank and unique.
func (t *Tracker) CreateUser(ctx context.Context, username string) (store.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return store.User{}, fmt.Errorf("username is required: %w", ErrValidation)
	}

	user, err := t.repo.CreateUser(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return store.User{}, ErrUsernameTaken
		}
		return store.User{}, fmt.Errorf("%w: create user: %w", ErrStore, err)
	}

	t.logs.Infow("user created", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// ListUsers returns every user in natural store order.
func (t *Tracker) ListUsers(ctx context.Context) ([]store.User, error) {
	users, err := t.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list users: %w", ErrStore, err)
	}

	if users == nil {
		users = []store.User{}
	}
	return users, nil
}

// AddExercise logs an exercise for an existing user. A missing date means today.
func (t *Tracker) AddExercise(ctx context.Context, input NewExercise) (ExerciseEntry, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return ExerciseEntry{}, fmt.Errorf("description is required: %w", ErrValidation)
	}
	if input.Duration <= 0 {
		return ExerciseEntry{}, fmt.Errorf("duration must be a positive number of minutes: %w", ErrValidation)
	}

	user, err := t.getUser(ctx, input.UserID)
	if err != nil {
		return ExerciseEntry{}, err
	}

	date := CalendarDay(TimeNow())
	if input.Date != nil {
		date = CalendarDay(*input.Date)
	}

	exercise, err := t.repo.CreateExercise(ctx, store.Exercise{
		UserID:      user.ID,
		Description: description,
		Duration:    input.Duration,
		Date:        date,
	})
	if err != nil {
		return ExerciseEntry{}, fmt.Errorf("%w: create exercise: %w", ErrStore, err)
	}

	t.logs.Infow("exercise logged",
		"user_id", user.ID,
		"exercise_id", exercise.ID,
		"date", date.Format(DateLayout))

	return ExerciseEntry{
		User:     user,
		Exercise: exercise,
	}, nil
}

// GetLog returns a user's exercises within the inclusive [From, To] range,
// oldest first, truncated to Limit entries when Limit is positive.
func (t *Tracker) GetLog(ctx context.Context, query LogQuery) (ExerciseLog, error) {
	if !t.repo.ValidID(query.UserID) {
		return ExerciseLog{}, fmt.Errorf("invalid user id: %w", ErrValidation)
	}

	user, err := t.getUser(ctx, query.UserID)
	if err != nil {
		return ExerciseLog{}, err
	}

	filter := store.ExerciseFilter{
		UserID: user.ID,
	}
	if query.From != nil {
		from := CalendarDay(*query.From)
		filter.From = &from
	}
	if query.To != nil {
		to := CalendarDay(*query.To)
		filter.To = &to
	}
	if query.Limit > 0 {
		filter.Limit = query.Limit
	}

	exercises, err := t.repo.ListExercises(ctx, filter)
	if err != nil {
		return ExerciseLog{}, fmt.Errorf("%w: list exercises: %w", ErrStore, err)
	}

	if exercises == nil {
		exercises = []store.Exercise{}
	}
	if filter.Limit > 0 && len(exercises) > filter.Limit {
		exercises = exercises[:filter.Limit]
	}

	t.logs.Infow("exercise log fetched", "user_id", user.ID, "count", len(exercises))

	return ExerciseLog{
		User:      user,
		Exercises: exercises,
	}, nil
}

func (t *Tracker) getUser(ctx context.Context, id string) (store.User, error) {
	user, err := t.repo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.User{}, ErrUserNotFound
		}
		return store.User{}, fmt.Errorf("%w: get user: %w", ErrStore, err)
	}
	return user, nil
}
