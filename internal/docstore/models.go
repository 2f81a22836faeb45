package docstore

import (
	"exercisetracker/internal/store"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	usersCollection     = "users"
	exercisesCollection = "exercises"
)

type userDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
}

type exerciseDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"userId"`
	Description string             `bson:"description"`
	Duration    int                `bson:"duration"`
	Date        time.Time          `bson:"date"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func (u userDocument) toRecord() store.User {
	return store.User{
		ID:       u.ID.Hex(),
		Username: u.Username,
	}
}

func (e exerciseDocument) toRecord() store.Exercise {
	return store.Exercise{
		ID:          e.ID.Hex(),
		UserID:      e.UserID.Hex(),
		Description: e.Description,
		Duration:    e.Duration,
		Date:        e.Date.UTC(),
	}
}
