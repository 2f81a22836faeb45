package store

import "time"

type User struct {
	ID       string
	Username string
}

type Exercise struct {
	ID          string
	UserID      string
	Description string
	Duration    int
	Date        time.Time
}

// ExerciseFilter selects a user's exercises. From and To are inclusive and
// independently optional; a Limit of zero means no limit.
type ExerciseFilter struct {
	UserID string
	From   *time.Time
	To     *time.Time
	Limit  int
}
