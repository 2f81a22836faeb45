package payload

import (
	"encoding/json"
	"errors"
	"exercisetracker/internal/core"
	"regexp"
	"strings"

	"github.com/jellydator/validation"
)

var (
	isCalendarDate  = validation.Date(core.DateLayout).Error("must be a date in YYYY-MM-DD format")
	isPositiveLimit = validation.Match(regexp.MustCompile(`^[1-9][0-9]*$`)).Error("must be a positive integer")
)

func notBlank(value any) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}

func positiveMinutes(value any) error {
	n, _ := value.(json.Number)
	minutes, err := n.Int64()
	if err != nil || minutes <= 0 {
		return errors.New("must be a positive whole number of minutes")
	}
	return nil
}
