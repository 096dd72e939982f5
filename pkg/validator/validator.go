package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

func (e *ErrorResponse) Error() string {
	return fmt.Sprintf("validation failed: field '%s' failed on tag '%s'", e.FailedField, e.Tag)
}

var validate = validator.New()

// ValidateStruct runs the struct's validate tags and reports every failed
// field.
func ValidateStruct(data interface{}) []*ErrorResponse {
	var errs []*ErrorResponse
	if err := validate.Struct(data); err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			errs = append(errs, &ErrorResponse{
				FailedField: err.StructNamespace(),
				Tag:         err.Tag(),
				Value:       err.Param(),
			})
		}
	}
	return errs
}
