package payload

import "github.com/jellydator/validation"

type CreateUserRequest struct {
	Username string `json:"username"`
}

func (c CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Username, validation.Required, validation.By(notBlank)),
	)
}
