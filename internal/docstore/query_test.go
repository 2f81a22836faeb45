package docstore

import (
	"exercisetracker/internal/store"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ = Describe("exerciseQuery", func() {
	var (
		userID primitive.ObjectID
		jan1   time.Time
		jan31  time.Time
	)

	BeforeEach(func() {
		userID = primitive.NewObjectID()
		jan1 = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		jan31 = time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	})

	It("should match only the user when no bounds are set", func() {
		query, opts, err := exerciseQuery(store.ExerciseFilter{UserID: userID.Hex()})
		Expect(err).NotTo(HaveOccurred())
		Expect(query).To(Equal(bson.D{{Key: "userId", Value: userID}}))
		Expect(opts.Limit).To(BeNil())
		Expect(opts.Sort).To(Equal(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}}))
	})

	It("should bound the date inclusively and apply the limit", func() {
		query, opts, err := exerciseQuery(store.ExerciseFilter{
			UserID: userID.Hex(),
			From:   &jan1,
			To:     &jan31,
			Limit:  3,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(query).To(Equal(bson.D{
			{Key: "userId", Value: userID},
			{Key: "date", Value: bson.D{
				{Key: "$gte", Value: jan1},
				{Key: "$lte", Value: jan31},
			}},
		}))
		Expect(*opts.Limit).To(Equal(int64(3)))
	})

	It("should support a single bound", func() {
		query, _, err := exerciseQuery(store.ExerciseFilter{UserID: userID.Hex(), To: &jan31})
		Expect(err).NotTo(HaveOccurred())
		Expect(query[1]).To(Equal(bson.E{Key: "date", Value: bson.D{{Key: "$lte", Value: jan31}}}))
	})

	It("should treat a malformed id as not found", func() {
		_, _, err := exerciseQuery(store.ExerciseFilter{UserID: "not-an-object-id"})
		Expect(err).To(MatchError(store.ErrNotFound))
	})
})

var _ = Describe("Store", func() {
	It("should accept only ObjectID hex strings as ids", func() {
		s := &Store{}
		Expect(s.ValidID(primitive.NewObjectID().Hex())).To(BeTrue())
		Expect(s.ValidID("65a1f0c2e4b0a1b2c3d4e5f6")).To(BeTrue())
		Expect(s.ValidID("123")).To(BeFalse())
		Expect(s.ValidID("zzzzzzzzzzzzzzzzzzzzzzzz")).To(BeFalse())
	})
})
