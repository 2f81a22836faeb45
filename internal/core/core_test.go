package core_test

import (
	"context"
	"errors"
	"exercisetracker/internal/core"
	"exercisetracker/internal/core/fake"
	"exercisetracker/internal/store"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Tracker", func() {
	var (
		fakeRepo   *fake.Repository
		fakeLogger *zap.SugaredLogger
		ctx        context.Context
		tracker    *core.Tracker
		fakeErr    error
		alice      store.User
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()
		tracker = core.NewTracker(fakeLogger, fakeRepo)
		fakeErr = errors.New("fake error")
		alice = store.User{ID: uuid.NewString(), Username: "alice"}
	})

	Describe("CreateUser", func() {
		var (
			username string
			user     store.User
			err      error
		)

		BeforeEach(func() {
			username = "alice"
			fakeRepo.CreateUserReturns(alice, nil)
		})

		JustBeforeEach(func() {
			user, err = tracker.CreateUser(ctx, username)
		})

		When("the username is new", func() {
			It("should return the created user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user).To(Equal(alice))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, arg := fakeRepo.CreateUserArgsForCall(0)
				Expect(arg).To(Equal("alice"))
			})
		})

		When("the username is blank", func() {
			BeforeEach(func() {
				username = "   "
			})

			It("should fail validation without touching the store", func() {
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("the username already exists", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(store.User{}, store.ErrDuplicate)
			})

			It("should return a conflict", func() {
				Expect(err).To(MatchError(core.ErrUsernameTaken))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(store.User{}, fakeErr)
			})

			It("should return a store error", func() {
				Expect(err).To(MatchError(core.ErrStore))
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListUsers", func() {
		var (
			users []store.User
			err   error
		)

		JustBeforeEach(func() {
			users, err = tracker.ListUsers(ctx)
		})

		When("users exist", func() {
			BeforeEach(func() {
				fakeRepo.ListUsersReturns([]store.User{alice}, nil)
			})

			It("should return them", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(users).To(ConsistOf(alice))
			})
		})

		When("the store returns nothing", func() {
			It("should return an empty, non-nil slice", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(users).NotTo(BeNil())
				Expect(users).To(BeEmpty())
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.ListUsersReturns(nil, fakeErr)
			})

			It("should return a store error", func() {
				Expect(err).To(MatchError(core.ErrStore))
			})
		})
	})

	Describe("AddExercise", func() {
		var (
			input   core.NewExercise
			entry   core.ExerciseEntry
			err     error
			jan1    time.Time
			prevNow func() time.Time
		)

		BeforeEach(func() {
			jan1 = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
			input = core.NewExercise{
				UserID:      alice.ID,
				Description: "run",
				Duration:    30,
				Date:        &jan1,
			}

			fakeRepo.GetUserReturns(alice, nil)
			fakeRepo.CreateExerciseStub = func(ctx context.Context, e store.Exercise) (store.Exercise, error) {
				e.ID = "exercise-1"
				return e, nil
			}

			prevNow = core.TimeNow
		})

		AfterEach(func() {
			core.TimeNow = prevNow
		})

		JustBeforeEach(func() {
			entry, err = tracker.AddExercise(ctx, input)
		})

		When("the user exists", func() {
			It("should persist the exercise for that user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(entry.User).To(Equal(alice))
				Expect(entry.Exercise.ID).To(Equal("exercise-1"))
				Expect(entry.Exercise.UserID).To(Equal(alice.ID))
				Expect(entry.Exercise.Date).To(Equal(jan1))
				Expect(core.FormatDate(entry.Exercise.Date)).To(Equal("Mon Jan 01 2024"))
			})
		})

		When("no date is given", func() {
			BeforeEach(func() {
				input.Date = nil
				core.TimeNow = func() time.Time {
					return time.Date(2024, time.March, 5, 17, 45, 12, 0, time.UTC)
				}
			})

			It("should use today's calendar date", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(entry.Exercise.Date).To(Equal(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)))
				Expect(core.FormatDate(entry.Exercise.Date)).To(Equal("Tue Mar 05 2024"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserReturns(store.User{}, store.ErrNotFound)
			})

			It("should return not found and persist nothing", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
				Expect(fakeRepo.CreateExerciseCallCount()).To(Equal(0))
			})
		})

		When("the duration is not positive", func() {
			BeforeEach(func() {
				input.Duration = 0
			})

			It("should fail validation before any lookup", func() {
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(fakeRepo.GetUserCallCount()).To(Equal(0))
			})
		})

		When("the description is blank", func() {
			BeforeEach(func() {
				input.Description = ""
			})

			It("should fail validation", func() {
				Expect(err).To(MatchError(core.ErrValidation))
			})
		})

		When("saving fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateExerciseStub = nil
				fakeRepo.CreateExerciseReturns(store.Exercise{}, fakeErr)
			})

			It("should return a store error", func() {
				Expect(err).To(MatchError(core.ErrStore))
			})
		})
	})

	Describe("GetLog", func() {
		var (
			query core.LogQuery
			log   core.ExerciseLog
			err   error
			jan1  time.Time
			jan31 time.Time
		)

		BeforeEach(func() {
			jan1 = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
			jan31 = time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
			query = core.LogQuery{UserID: alice.ID, From: &jan1, To: &jan31}

			fakeRepo.ValidIDReturns(true)
			fakeRepo.GetUserReturns(alice, nil)
			fakeRepo.ListExercisesReturns([]store.Exercise{
				{ID: "e-1", UserID: alice.ID, Description: "run", Duration: 30, Date: jan1},
				{ID: "e-2", UserID: alice.ID, Description: "swim", Duration: 45, Date: jan31},
			}, nil)
		})

		JustBeforeEach(func() {
			log, err = tracker.GetLog(ctx, query)
		})

		When("the user has exercises in range", func() {
			It("should return them with a matching count", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(log.User).To(Equal(alice))
				Expect(log.Count()).To(Equal(2))

				_, filter := fakeRepo.ListExercisesArgsForCall(0)
				Expect(filter.UserID).To(Equal(alice.ID))
				Expect(*filter.From).To(Equal(jan1))
				Expect(*filter.To).To(Equal(jan31))
				Expect(filter.Limit).To(Equal(0))
			})
		})

		When("a limit is given", func() {
			BeforeEach(func() {
				query.Limit = 1
			})

			It("should pass it down and truncate the result", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(log.Count()).To(Equal(1))
				Expect(log.Exercises[0].ID).To(Equal("e-1"))

				_, filter := fakeRepo.ListExercisesArgsForCall(0)
				Expect(filter.Limit).To(Equal(1))
			})
		})

		When("nothing matches", func() {
			BeforeEach(func() {
				fakeRepo.ListExercisesReturns(nil, nil)
			})

			It("should return an empty log", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(log.Exercises).NotTo(BeNil())
				Expect(log.Count()).To(Equal(0))
			})
		})

		When("the id is malformed", func() {
			BeforeEach(func() {
				fakeRepo.ValidIDReturns(false)
			})

			It("should fail validation", func() {
				Expect(err).To(MatchError(core.ErrValidation))
				Expect(fakeRepo.GetUserCallCount()).To(Equal(0))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserReturns(store.User{}, store.ErrNotFound)
			})

			It("should return not found", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
				Expect(fakeRepo.ListExercisesCallCount()).To(Equal(0))
			})
		})

		When("the user lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserReturns(store.User{}, fakeErr)
			})

			It("should return a store error", func() {
				Expect(err).To(MatchError(core.ErrStore))
			})
		})

		When("listing fails", func() {
			BeforeEach(func() {
				fakeRepo.ListExercisesReturns(nil, fakeErr)
			})

			It("should return a store error", func() {
				Expect(err).To(MatchError(core.ErrStore))
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
