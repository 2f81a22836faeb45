package repository

import (
	"context"
	"errors"
	"exercisetracker/internal/db"
	"exercisetracker/internal/store"
	"fmt"

	"github.com/google/uuid"
)

type ExerciseRepository struct {
	db Storage
}

func NewExerciseRepository(db Storage) *ExerciseRepository {
	return &ExerciseRepository{
		db: db,
	}
}

func (r *ExerciseRepository) Migrate(ctx context.Context) error {
	err := r.db.MigrateModels(&User{}, &Exercise{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// ValidID reports whether id has the shape of an identifier this repository issues.
func (r *ExerciseRepository) ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (r *ExerciseRepository) CreateUser(ctx context.Context, username string) (store.User, error) {
	user := User{
		ID:       uuid.NewString(),
		Username: username,
	}

	err := r.db.Insert(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return store.User{}, fmt.Errorf("insert user: %w", store.ErrDuplicate)
		}
		return store.User{}, fmt.Errorf("insert user: %w", err)
	}

	return user.toRecord(), nil
}

func (r *ExerciseRepository) ListUsers(ctx context.Context) ([]store.User, error) {
	var users []User

	err := r.db.GetAll(ctx, &users)
	if err != nil {
		return nil, fmt.Errorf("get all users: %w", err)
	}

	records := make([]store.User, 0, len(users))
	for _, u := range users {
		records = append(records, u.toRecord())
	}

	return records, nil
}

func (r *ExerciseRepository) GetUser(ctx context.Context, id string) (store.User, error) {
	if !r.ValidID(id) {
		return store.User{}, store.ErrNotFound
	}

	var user User
	err := r.db.GetOneBy(ctx, "id", id, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return store.User{}, store.ErrNotFound
		}
		return store.User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user.toRecord(), nil
}

func (r *ExerciseRepository) CreateExercise(ctx context.Context, exercise store.Exercise) (store.Exercise, error) {
	row := Exercise{
		ID:          uuid.NewString(),
		UserID:      exercise.UserID,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date.UTC(),
	}

	err := r.db.Insert(ctx, &row)
	if err != nil {
		return store.Exercise{}, fmt.Errorf("insert exercise: %w", err)
	}

	return row.toRecord(), nil
}

func (r *ExerciseRepository) ListExercises(ctx context.Context, filter store.ExerciseFilter) ([]store.Exercise, error) {
	var rows []Exercise

	err := r.db.Find(ctx, db.Query{
		Column:      "user_id",
		Value:       filter.UserID,
		RangeColumn: "date",
		From:        filter.From,
		To:          filter.To,
		OrderBy:     "date asc, created_at asc",
		Limit:       filter.Limit,
	}, &rows)
	if err != nil {
		return nil, fmt.Errorf("find exercises: %w", err)
	}

	records := make([]store.Exercise, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toRecord())
	}

	return records, nil
}
