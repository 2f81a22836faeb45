package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/jellydator/validation"
)

var (
	ErrMalformedBody = errors.New("malformed request body")
	ErrInvalidFields = errors.New("invalid request fields")
)

const formContentType = "application/x-www-form-urlencoded"

// Decoder reads JSON or urlencoded form bodies into request structs and
// validates the result when the target implements validation.Validatable.
type Decoder struct{}

func (d Decoder) DecodeBody(r *http.Request, object any) error {
	var err error
	if isForm(r) {
		err = decodeForm(r, object)
	} else {
		err = decodeJSON(r, object)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	return validatePayload(object)
}

func isForm(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == formContentType
}

func decodeJSON(r *http.Request, object any) (err error) {
	decoder := json.NewDecoder(r.Body)
	defer func() {
		errClose := r.Body.Close()
		if err == nil {
			err = errClose
		}
	}()

	decoder.DisallowUnknownFields()

	if err = decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return nil
}

// decodeForm maps the first value of every form field onto the JSON field of
// the same name, so request structs only carry json tags. Empty fields are
// treated as absent.
func decodeForm(r *http.Request, object any) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parsing form payload: %w", err)
	}

	fields := make(map[string]string, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) > 0 && values[0] != "" {
			fields[key] = values[0]
		}
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encoding form payload: %w", err)
	}

	if err := json.Unmarshal(raw, object); err != nil {
		return fmt.Errorf("decoding form payload: %w", err)
	}

	return nil
}

func validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFields, err)
	}

	return nil
}
