package payload

import (
	"errors"
	"exercisetracker/internal/core"
	"net/url"
	"strconv"

	"github.com/jellydator/validation"
)

var ErrLimitOutOfRange = errors.New("limit: must be a positive integer")

// LogRequest holds the optional query parameters of a log lookup.
type LogRequest struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Limit string `json:"limit"`
}

func NewLogRequest(query url.Values) LogRequest {
	return LogRequest{
		From:  query.Get("from"),
		To:    query.Get("to"),
		Limit: query.Get("limit"),
	}
}

func (l LogRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.From, isCalendarDate),
		validation.Field(&l.To, isCalendarDate),
		validation.Field(&l.Limit, isPositiveLimit),
	)
}

func (l LogRequest) ToLogQuery(userID string) (core.LogQuery, error) {
	query := core.LogQuery{
		UserID: userID,
	}

	if l.From != "" {
		from, err := core.ParseDate(l.From)
		if err != nil {
			return core.LogQuery{}, err
		}
		query.From = &from
	}

	if l.To != "" {
		to, err := core.ParseDate(l.To)
		if err != nil {
			return core.LogQuery{}, err
		}
		query.To = &to
	}

	if l.Limit != "" {
		limit, err := strconv.Atoi(l.Limit)
		if err != nil {
			return core.LogQuery{}, ErrLimitOutOfRange
		}
		query.Limit = limit
	}

	return query, nil
}
