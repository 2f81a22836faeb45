package handler

import (
	"exercisetracker/internal/core"
	"exercisetracker/internal/store"
)

const oopsErr = "Oops! Something went wrong. Please try again later."

const (
	msgUsernameRequired = "Username is required"
	msgInvalidBody      = "Invalid request body"
	msgUsernameTaken    = "Username already exists"
	msgUserNotFound     = "User not found"
	msgInvalidUserID    = "Invalid user ID"
	msgListUsersFailed  = "Failed to retrieve users"
	msgCreateUserFailed = "Failed to create user"
	msgAddFailed        = "Failed to add exercise"
	msgLogFailed        = "Failed to retrieve exercise log"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type UserResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

type ExerciseResponse struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
}

type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type LogResponse struct {
	ID       string     `json:"_id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}

func newUserResponse(user store.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
	}
}

func newExerciseResponse(entry core.ExerciseEntry) ExerciseResponse {
	return ExerciseResponse{
		ID:          entry.User.ID,
		Username:    entry.User.Username,
		Date:        core.FormatDate(entry.Exercise.Date),
		Description: entry.Exercise.Description,
		Duration:    entry.Exercise.Duration,
	}
}

func newLogResponse(log core.ExerciseLog) LogResponse {
	entries := make([]LogEntry, 0, len(log.Exercises))
	for _, e := range log.Exercises {
		entries = append(entries, LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        core.FormatDate(e.Date),
		})
	}

	return LogResponse{
		ID:       log.User.ID,
		Username: log.User.Username,
		Count:    log.Count(),
		Log:      entries,
	}
}
