package docstore

import (
	"context"
	"errors"
	"exercisetracker/internal/store"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// Store keeps users and exercises in two MongoDB collections.
type Store struct {
	client    *mongo.Client
	users     *mongo.Collection
	exercises *mongo.Collection
}

// Connect dials uri and verifies the deployment is reachable.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	s := New(client, dbName)
	if err := s.Ping(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return s, nil
}

func New(client *mongo.Client, dbName string) *Store {
	db := client.Database(dbName)
	return &Store{
		client:    client,
		users:     db.Collection(usersCollection),
		exercises: db.Collection(exercisesCollection),
	}
}

// Migrate creates the indexes the queries rely on. It is idempotent.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("username_unique"),
	})
	if err != nil {
		return fmt.Errorf("create users index: %w", err)
	}

	_, err = s.exercises.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetName("user_date"),
	})
	if err != nil {
		return fmt.Errorf("create exercises index: %w", err)
	}

	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("ping mongodb: %w", err)
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongodb: %w", err)
	}
	return nil
}

func (s *Store) ValidID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}

func (s *Store) CreateUser(ctx context.Context, username string) (store.User, error) {
	doc := userDocument{
		ID:       primitive.NewObjectID(),
		Username: username,
	}

	if _, err := s.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.User{}, fmt.Errorf("insert user: %w", store.ErrDuplicate)
		}
		return store.User{}, fmt.Errorf("insert user: %w", err)
	}

	return doc.toRecord(), nil
}

func (s *Store) ListUsers(ctx context.Context) ([]store.User, error) {
	cursor, err := s.users.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}

	users := make([]store.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toRecord())
	}
	return users, nil
}

// GetUser reports store.ErrNotFound for ids that are not ObjectID hex strings.
func (s *Store) GetUser(ctx context.Context, id string) (store.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return store.User{}, store.ErrNotFound
	}

	var doc userDocument
	err = s.users.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return store.User{}, store.ErrNotFound
		}
		return store.User{}, fmt.Errorf("find user %q: %w", id, err)
	}

	return doc.toRecord(), nil
}

func (s *Store) CreateExercise(ctx context.Context, exercise store.Exercise) (store.Exercise, error) {
	userID, err := primitive.ObjectIDFromHex(exercise.UserID)
	if err != nil {
		return store.Exercise{}, fmt.Errorf("parse user id %q: %w", exercise.UserID, store.ErrNotFound)
	}

	doc := exerciseDocument{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date,
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := s.exercises.InsertOne(ctx, doc); err != nil {
		return store.Exercise{}, fmt.Errorf("insert exercise: %w", err)
	}

	return doc.toRecord(), nil
}

func (s *Store) ListExercises(ctx context.Context, filter store.ExerciseFilter) ([]store.Exercise, error) {
	query, opts, err := exerciseQuery(filter)
	if err != nil {
		return nil, err
	}

	cursor, err := s.exercises.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find exercises: %w", err)
	}

	var docs []exerciseDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("read exercises: %w", err)
	}

	exercises := make([]store.Exercise, 0, len(docs))
	for _, d := range docs {
		exercises = append(exercises, d.toRecord())
	}
	return exercises, nil
}
