package docstore

import (
	"exercisetracker/internal/store"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// exerciseQuery translates a filter into a find document and options that
// return matches oldest first, insertion order breaking ties.
func exerciseQuery(filter store.ExerciseFilter) (bson.D, *options.FindOptions, error) {
	userID, err := primitive.ObjectIDFromHex(filter.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("parse user id %q: %w", filter.UserID, store.ErrNotFound)
	}

	query := bson.D{{Key: "userId", Value: userID}}

	dateRange := bson.D{}
	if filter.From != nil {
		dateRange = append(dateRange, bson.E{Key: "$gte", Value: *filter.From})
	}
	if filter.To != nil {
		dateRange = append(dateRange, bson.E{Key: "$lte", Value: *filter.To})
	}
	if len(dateRange) > 0 {
		query = append(query, bson.E{Key: "date", Value: dateRange})
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "date", Value: 1},
		{Key: "_id", Value: 1},
	})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	return query, opts, nil
}
