package payload

import (
	"encoding/json"
	"exercisetracker/internal/core"
	"fmt"

	"github.com/jellydator/validation"
)

// AddExerciseRequest accepts duration as a JSON number or a numeric string.
// An empty date means today.
type AddExerciseRequest struct {
	Description string      `json:"description"`
	Duration    json.Number `json:"duration"`
	Date        string      `json:"date"`
}

func (a AddExerciseRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Description, validation.Required, validation.By(notBlank)),
		validation.Field(&a.Duration, validation.Required, validation.By(positiveMinutes)),
		validation.Field(&a.Date, isCalendarDate),
	)
}

func (a AddExerciseRequest) ToNewExercise(userID string) (core.NewExercise, error) {
	duration, err := a.Duration.Int64()
	if err != nil {
		return core.NewExercise{}, fmt.Errorf("parse duration: %w", err)
	}

	exercise := core.NewExercise{
		UserID:      userID,
		Description: a.Description,
		Duration:    int(duration),
	}

	if a.Date != "" {
		date, err := core.ParseDate(a.Date)
		if err != nil {
			return core.NewExercise{}, err
		}
		exercise.Date = &date
	}

	return exercise, nil
}
