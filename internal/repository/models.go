package repository

import (
	"exercisetracker/internal/store"
	"time"
)

type User struct {
	ID       string `gorm:"primaryKey;autoIncrement:false;size:36"`
	Username string `gorm:"type:varchar(255);uniqueIndex;not null"`
}

type Exercise struct {
	ID          string    `gorm:"primaryKey;autoIncrement:false;size:36"`
	UserID      string    `gorm:"size:36;not null;index:idx_exercises_user_date,priority:1"`
	Description string    `gorm:"type:text;not null"`
	Duration    int       `gorm:"not null"`
	Date        time.Time `gorm:"type:date;not null;index:idx_exercises_user_date,priority:2"`
	CreatedAt   time.Time // tie-break for exercises logged on the same day
}

func (u User) toRecord() store.User {
	return store.User{
		ID:       u.ID,
		Username: u.Username,
	}
}

func (e Exercise) toRecord() store.Exercise {
	return store.Exercise{
		ID:          e.ID,
		UserID:      e.UserID,
		Description: e.Description,
		Duration:    e.Duration,
		Date:        e.Date.UTC(),
	}
}
