package payload_test

import (
	"exercisetracker/internal/http/payload"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Payload", func() {
	var decoder payload.Decoder

	jsonRequest := func(body string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return req
	}

	formRequest := func(values url.Values) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(values.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
		return req
	}

	Describe("CreateUserRequest", func() {
		var request payload.CreateUserRequest

		BeforeEach(func() {
			request = payload.CreateUserRequest{}
		})

		It("should decode a JSON body", func() {
			err := decoder.DecodeBody(jsonRequest(`{"username":"alice"}`), &request)
			Expect(err).NotTo(HaveOccurred())
			Expect(request.Username).To(Equal("alice"))
		})

		It("should decode a form body", func() {
			err := decoder.DecodeBody(formRequest(url.Values{"username": {"alice"}}), &request)
			Expect(err).NotTo(HaveOccurred())
			Expect(request.Username).To(Equal("alice"))
		})

		It("should reject a blank username", func() {
			err := decoder.DecodeBody(jsonRequest(`{"username":"   "}`), &request)
			Expect(err).To(MatchError(payload.ErrInvalidFields))
		})

		It("should reject a missing username", func() {
			err := decoder.DecodeBody(formRequest(url.Values{}), &request)
			Expect(err).To(MatchError(payload.ErrInvalidFields))
		})

		It("should reject malformed JSON", func() {
			err := decoder.DecodeBody(jsonRequest(`{"username":`), &request)
			Expect(err).To(MatchError(payload.ErrMalformedBody))
		})

		It("should reject unknown JSON fields", func() {
			err := decoder.DecodeBody(jsonRequest(`{"username":"alice","admin":true}`), &request)
			Expect(err).To(MatchError(payload.ErrMalformedBody))
		})
	})

	Describe("AddExerciseRequest", func() {
		var request payload.AddExerciseRequest

		BeforeEach(func() {
			request = payload.AddExerciseRequest{}
		})

		It("should accept a numeric duration", func() {
			err := decoder.DecodeBody(jsonRequest(`{"description":"run","duration":30,"date":"2024-01-01"}`), &request)
			Expect(err).NotTo(HaveOccurred())

			exercise, err := request.ToNewExercise("u-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(exercise.UserID).To(Equal("u-1"))
			Expect(exercise.Description).To(Equal("run"))
			Expect(exercise.Duration).To(Equal(30))
			Expect(*exercise.Date).To(Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)))
		})

		It("should accept a duration sent as a form string", func() {
			err := decoder.DecodeBody(formRequest(url.Values{
				":_id":        {"u-1"},
				"description": {"swim"},
				"duration":    {"45"},
				"date":        {""},
			}), &request)
			Expect(err).NotTo(HaveOccurred())

			exercise, err := request.ToNewExercise("u-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(exercise.Duration).To(Equal(45))
			Expect(exercise.Date).To(BeNil())
		})

		DescribeTable("should reject invalid fields",
			func(body string) {
				err := decoder.DecodeBody(jsonRequest(body), &request)
				Expect(err).To(HaveOccurred())
			},
			Entry("missing description", `{"duration":30}`),
			Entry("blank description", `{"description":" ","duration":30}`),
			Entry("missing duration", `{"description":"run"}`),
			Entry("zero duration", `{"description":"run","duration":0}`),
			Entry("negative duration", `{"description":"run","duration":-5}`),
			Entry("fractional duration", `{"description":"run","duration":1.5}`),
			Entry("non-numeric duration", `{"description":"run","duration":"abc"}`),
			Entry("malformed date", `{"description":"run","duration":30,"date":"01/01/2024"}`),
			Entry("impossible date", `{"description":"run","duration":30,"date":"2024-02-30"}`),
		)
	})

	Describe("LogRequest", func() {
		It("should build a query with every bound", func() {
			request := payload.NewLogRequest(url.Values{
				"from":  {"2024-01-01"},
				"to":    {"2024-01-31"},
				"limit": {"2"},
			})
			Expect(request.Validate()).To(Succeed())

			query, err := request.ToLogQuery("u-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(query.UserID).To(Equal("u-1"))
			Expect(*query.From).To(Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)))
			Expect(*query.To).To(Equal(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)))
			Expect(query.Limit).To(Equal(2))
		})

		It("should leave absent bounds unset", func() {
			request := payload.NewLogRequest(url.Values{})
			Expect(request.Validate()).To(Succeed())

			query, err := request.ToLogQuery("u-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(query.From).To(BeNil())
			Expect(query.To).To(BeNil())
			Expect(query.Limit).To(Equal(0))
		})

		DescribeTable("should reject invalid parameters by their query name",
			func(values url.Values, param string) {
				err := payload.NewLogRequest(values).Validate()
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(HavePrefix(param + ": "))
			},
			Entry("malformed from", url.Values{"from": {"yesterday"}}, "from"),
			Entry("impossible from", url.Values{"from": {"2024-13-01"}}, "from"),
			Entry("malformed to", url.Values{"to": {"2024-1-1"}}, "to"),
			Entry("zero limit", url.Values{"limit": {"0"}}, "limit"),
			Entry("negative limit", url.Values{"limit": {"-1"}}, "limit"),
			Entry("non-numeric limit", url.Values{"limit": {"ten"}}, "limit"),
		)

		It("should report an oversized limit without parser details", func() {
			request := payload.NewLogRequest(url.Values{"limit": {"99999999999999999999"}})
			Expect(request.Validate()).To(Succeed())

			_, err := request.ToLogQuery("u-1")
			Expect(err).To(MatchError(payload.ErrLimitOutOfRange))
			Expect(err.Error()).To(Equal("limit: must be a positive integer"))
			Expect(err.Error()).NotTo(ContainSubstring("strconv"))
		})
	})
})
